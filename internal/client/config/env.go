package config

import "github.com/caarlos0/env"

// parseEnv overlays Config with values from the environment, per the env
// tags on Config. Unset variables leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
