package config

import (
	"fmt"
	"strings"
)

type EnvVars struct {
	Port    string `env:"PORT"     envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"Photo Session"`
	Env     string `env:"ENV"      envDefault:"DEV"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	return e.Port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}

func (e EnvVars) IsDev() bool {
	return e.Env == "DEV"
}

func (e *EnvVars) sanitize() {
	if e.Port != "" && e.Port[0] != ':' {
		e.Port = fmt.Sprintf(":%s", e.Port)
	}
	e.Env = strings.ToUpper(strings.TrimSpace(e.Env))
	if e.Env == "" {
		e.Env = "DEV"
	}
}
