package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/shortlink/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the shortlink API (default from Config)
//	-d string   local database path (default from Config)
//	-i int      dashboard refresh interval in seconds (default from Config)
//
// The function filters os.Args down to the flags it owns, via
// flagx.FilterArgs, so it never collides with flags parsed elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the shortlink API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local database")
	refreshInterval := fs.Int("i", int(cfg.RefreshInterval.Seconds()), "dashboard refresh interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshInterval = time.Duration(*refreshInterval) * time.Second
}
