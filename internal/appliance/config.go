// Package appliance holds the connection configuration for the target
// OneView appliance. Values come from an optional YAML file with
// ONEVIEW_* environment variables taking precedence.
package appliance

import (
	"errors"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config describes how to reach and authenticate against one appliance.
type Config struct {
	Endpoint        string        `yaml:"endpoint" env:"ONEVIEW_ENDPOINT"`
	Username        string        `yaml:"username" env:"ONEVIEW_USERNAME"`
	Password        string        `yaml:"password" env:"ONEVIEW_PASSWORD"`
	AuthLoginDomain string        `yaml:"auth_login_domain" env:"ONEVIEW_AUTH_LOGIN_DOMAIN" env-default:"local"`
	SessionID       string        `yaml:"session_id" env:"ONEVIEW_SESSION_ID"`
	APIVersion      int           `yaml:"api_version" env:"ONEVIEW_API_VERSION" env-default:"2400"`
	SSLVerify       bool          `yaml:"ssl_verify" env:"ONEVIEW_SSL_VERIFY" env-default:"true"`
	Timeout         time.Duration `yaml:"timeout" env:"ONEVIEW_TIMEOUT" env-default:"120s"`
}

// Load reads the connection configuration. When path is empty only the
// environment is consulted.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is sufficient to open a session.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("appliance endpoint is required")
	}
	if c.SessionID == "" && (c.Username == "" || c.Password == "") {
		return errors.New("either session_id or username and password are required")
	}
	return nil
}
