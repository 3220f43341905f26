package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnvFile loads a dotenv file into the process environment. An empty path is a no-op.
func LoadEnvFile(path string) error {
	if path == "" {
		log.Debug().Msg("no env file specified, using os.Environ only")
		return nil
	}

	log.Info().Str("path", path).Msg("loading env file")
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "error loading env file %q", path)
	}
	return nil
}

// ApplyEnv overrides server and log settings from MLGUIDE_* variables.
// Variables that are not set leave the file or default value in place.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(&cfg.Server); err != nil {
		return errors.Wrap(err, "error parsing server env")
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return errors.Wrap(err, "error parsing log env")
	}
	return cfg.Validate()
}
