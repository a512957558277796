package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

func Parse() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var spec ConfigSpec
	err = envconfig.Process("wishtally", &spec)
	if err != nil {
		_ = envconfig.Usage("wishtally", &spec)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Config{ConfigSpec: spec}, nil
}
