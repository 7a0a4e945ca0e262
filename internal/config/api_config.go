package config

import (
	"strings"
	"time"
)

type API struct {
	// BaseURL is prefixed to the /api/v1/auth routes (e.g. "http://localhost:5500")
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5500"`
	// RequestTimeout of zero means requests are not bounded by the client
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"0s"`
}

var _ APIConfig = API{}

func (a API) GetAPIBaseURL() string {
	return a.BaseURL
}

func (a API) GetRequestTimeout() time.Duration {
	return a.RequestTimeout
}

func (a *API) sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.RequestTimeout < 0 {
		a.RequestTimeout = 0
	}
}
