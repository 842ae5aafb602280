package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		PG      PG
		GCS     GCS
		Upload  Upload
		Video   Video
		Swagger Swagger
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT,required"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX,required"`
		URL     string `env:"PG_URL,required"`
	}

	// GCS.Credentials carries either inline service-account JSON or a path
	// to a key file; see pkg/gcpauth.
	GCS struct {
		Credentials    string        `env:"GCS_CREDENTIALS,required"`
		Bucket         string        `env:"GCS_BUCKET,required"`
		CfgLoadTimeout time.Duration `env:"GCS_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	Upload struct {
		ImageMaxSizeMB float64 `env:"UPLOAD_IMAGE_MAX_SIZE_MB" envDefault:"10"`
		VideoMaxSizeMB float64 `env:"UPLOAD_VIDEO_MAX_SIZE_MB" envDefault:"200"`
	}

	Video struct {
		AnnotateTimeout time.Duration `env:"VIDEO_ANNOTATE_TIMEOUT" envDefault:"300s"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
