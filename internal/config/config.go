package config

import (
	"time"

	pkgconfig "github.com/slientgoat/gl-id-generator/pkg/config"
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Auth       AuthConfig
	Namespaces []string
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type AuthConfig struct {
	Enabled  bool
	Secret   string
	Issuer   string
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8094)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.issuer", "gl-id-generator")
	v.SetDefault("auth.token_ttl", "1h")
	v.SetDefault("namespaces", []string{})

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("auth.secret", "AUTH_SECRET")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
