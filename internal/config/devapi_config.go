package config

import "time"

type DevAPIConfig interface {
	GetDevAPIEnabled() bool
	GetDevAPISecret() string
	GetDevTokenExpiry() time.Duration
}

// DevAPI configures the in-process reference auth API served alongside the viewer.
type DevAPI struct {
	Enabled     bool          `env:"DEV_API_ENABLED"  envDefault:"true"`
	Secret      string        `env:"DEV_API_SECRET"   envDefault:"dev-secret"`
	TokenExpiry time.Duration `env:"DEV_TOKEN_EXPIRY" envDefault:"1h"`
}

var _ DevAPIConfig = DevAPI{}

func (d DevAPI) GetDevAPIEnabled() bool {
	return d.Enabled
}

func (d DevAPI) GetDevAPISecret() string {
	return d.Secret
}

func (d DevAPI) GetDevTokenExpiry() time.Duration {
	return d.TokenExpiry
}
