// Package cli implements the interactive catalog client: a small REPL that
// talks to the catalog HTTP API for account management, browsing, seeding
// and image uploads.
package cli

import (
	"flag"
	"os"

	"github.com/andrejsk/prodcatalog/internal/flagx"
)

// Config holds runtime settings for the catalog CLI.
type Config struct {
	ServerBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
}

func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-server"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerBaseURL, "server", cfg.ServerBaseURL, "Base URL of the catalog API")
	fs.StringVar(&cfg.ServerBaseURL, "s", cfg.ServerBaseURL, "Base URL of the catalog API (short)")
	_ = fs.Parse(args)
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}
