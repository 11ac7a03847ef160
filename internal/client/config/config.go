package config

import "time"

// Config holds runtime settings for the shortlink CLI.
//
// Fields:
//   - APIBaseURL: base URL of the shortlink REST service.
//   - DatabaseDSN: path/DSN of the local sqlite database.
//   - RefreshInterval: how often the dashboard re-fetches the link list.
type Config struct {
	APIBaseURL      string        `env:"SHORTLINK_API_URL"`
	DatabaseDSN     string        `env:"SHORTLINK_DB"`
	RefreshInterval time.Duration `env:"SHORTLINK_REFRESH_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults. The API default matches
// a service running locally.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.DatabaseDSN = "shortlink.db"
	c.RefreshInterval = 10 * time.Second
}

// LoadConfig constructs a Config by applying defaults, then environment
// variables, then an optional JSON file, then command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
