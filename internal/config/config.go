package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config interface {
	EnvConfig
	APIConfig
	StorageConfig
	CorsConfig
	DevAPIConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	IsDev() bool
}

// APIConfig describes the remote auth API the session client talks to.
type APIConfig interface {
	GetAPIBaseURL() string
	GetRequestTimeout() time.Duration
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	API
	Storage
	Cors
	DevAPI
}

// New loads an optional .env file and then reads the configuration from the environment.
func New() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, errors.Wrap(err, "[config.New] load .env file")
		}
	}

	var c mainConfig
	if err := env.Parse(&c); err != nil {
		return nil, errors.Wrap(err, "[config.New] parse environment")
	}
	c.sanitize()
	return c, nil
}

func (c *mainConfig) sanitize() {
	c.EnvVars.sanitize()
	c.API.sanitize()
	c.Storage.sanitize()
}
