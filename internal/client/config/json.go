package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/shortlink/internal/flagx"
	"github.com/dmitrijs2005/shortlink/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration so JSON can give them either as strings like "10s" or
// as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	DatabaseDSN     string         `json:"database_dsn"`
	RefreshInterval timex.Duration `json:"refresh_interval"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// the -c/-config flags. Absent flag means no JSON is loaded. Empty fields
// in the file leave the current values untouched. Read or unmarshal errors
// panic; configuration is resolved before anything else starts.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RefreshInterval.Duration != 0 {
		cfg.RefreshInterval = time.Duration(jc.RefreshInterval.Duration)
	}
}
