package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"sqlite"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"file::memory:?cache=shared"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address        string        `envconfig:"FITTING_ROOM_ADDRESS" default:":8080"`
	MetricsAddress string        `envconfig:"FITTING_ROOM_METRICS_ADDRESS" default:":8081"`
	LogLevel       string        `envconfig:"FITTING_ROOM_LOG_LEVEL" default:"info"`
	CorsOrigins    []string      `envconfig:"FITTING_ROOM_CORS_ORIGINS" default:"*"`
	Session        sessionConfig
}

type sessionConfig struct {
	// TTL is the idle time after which a fitting session is discarded.
	TTL            time.Duration `envconfig:"FITTING_ROOM_SESSION_TTL" default:"30m"`
	ReaperInterval time.Duration `envconfig:"FITTING_ROOM_REAPER_INTERVAL" default:"1m"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a configuration filled with the default values only, ignoring the environment.
func NewDefault() *Config {
	cfg := &Config{
		Database: &dbConfig{
			Type:     "sqlite",
			Hostname: "localhost",
			Port:     "5432",
			Name:     "file::memory:?cache=shared",
			User:     "admin",
			Password: "adminpass",
		},
		Service: &svcConfig{
			Address:        ":8080",
			MetricsAddress: ":8081",
			LogLevel:       "info",
			CorsOrigins:    []string{"*"},
			Session: sessionConfig{
				TTL:            30 * time.Minute,
				ReaperInterval: time.Minute,
			},
		},
	}
	return cfg
}
