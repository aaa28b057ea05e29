package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings of the web server. It is read from a YAML file
// when one is given, environment variables taking precedence over its values.
type Config struct {
	Port              int    `yaml:"port" env:"PORT" env-default:"3000" env-description:"Port number in which the webserver listens for requests"`
	DatabasePath      string `yaml:"database-path" env:"DATABASE_PATH" env-default:"nanoperiod.db" env-description:"Path to the sqlite database storing saved periods"`
	JwtSecret         string `yaml:"jwt-secret" env:"JWT_SECRET" env-description:"String used to verify tokens. Writes are not protected if empty"`
	DefaultZone       string `yaml:"default-zone" env:"DEFAULT_ZONE" env-default:"UTC" env-description:"Time zone used when a request names none"`
	MaxSequenceLength int    `yaml:"max-sequence-length" env:"MAX_SEQUENCE_LENGTH" env-default:"100000" env-description:"Maximum number of instants in a generated sequence"`
	Workers           int    `yaml:"workers" env:"WORKERS" env-default:"8" env-description:"Maximum number of goroutines computing a batch request. Set to 0 for no limit"`
	ResultsPerPage    int    `yaml:"results-per-page" env:"RESULTS_PER_PAGE" env-default:"10" env-description:"Number of saved periods per page"`
	BodyLimit         int    `yaml:"body-limit" env:"BODY_LIMIT" env-default:"4194304" env-description:"Maximum request body size in bytes"`
	ReadTimeout       int    `yaml:"read-timeout" env:"READ_TIMEOUT" env-default:"30" env-description:"Maximum time to read a request, in seconds"`
	Verbose           bool   `yaml:"verbose" env:"VERBOSE" env-default:"false" env-description:"Log every request"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("error parsing configuration from environment variables: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing configuration file %s: %w", path, err)
	}
	return cfg, nil
}
