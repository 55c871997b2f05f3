package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Scrape configuration
	OutputDir   string  `long:"output-dir" env:"OUTPUT_DIR" default:"Export" description:"Directory for exported CSV files"`
	TagsFile    string  `long:"tags-file" env:"TAGS_FILE" description:"Optional YAML file overriding the built-in tag catalog"`
	Tags        string  `long:"tags" env:"TAG_SELECTION" description:"Tags to scrape as catalog numbers or ranges (e.g. 1,3,5-8); empty asks interactively"`
	Pages       int     `long:"pages" env:"PAGE_LIMIT" default:"-1" description:"Pages to fetch per tag; 0 scrapes until a page comes back empty, -1 asks interactively"`
	MaxPages    int     `long:"max-pages" env:"MAX_PAGES" default:"100" description:"Hard ceiling on pages fetched per tag"`
	DelayMin    float64 `long:"delay-min" env:"DELAY_MIN" default:"1" description:"Minimum politeness delay between requests in seconds"`
	DelayMax    float64 `long:"delay-max" env:"DELAY_MAX" default:"2.5" description:"Maximum politeness delay between requests in seconds"`
	Timeout     int     `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP request timeout in seconds"`
	UserAgent   string  `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36" description:"User agent string for HTTP requests"`
	WorkerCount int     `long:"worker-count" env:"WORKER_COUNT" default:"3" description:"Number of background workers for scrape tasks"`
	AuthorBios  bool    `long:"author-bios" env:"AUTHOR_BIOS" description:"Fetch author biographies after scraping (requires the archive)"`

	// Archive configuration
	Database   string `long:"database" env:"DATABASE" default:"quotes.db" description:"Path to the SQLite archive"`
	NoDatabase bool   `long:"no-database" env:"NO_DATABASE" description:"Disable the SQLite archive and export CSV only"`

	// Serve mode
	Serve bool   `long:"serve" env:"SERVE" description:"Serve the archived quotes over HTTP instead of scraping"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"HTTP server port for serve mode"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		OutputDir:   raw.OutputDir,
		TagsFile:    raw.TagsFile,
		Tags:        raw.Tags,
		Pages:       raw.Pages,
		MaxPages:    raw.MaxPages,
		DelayMin:    raw.DelayMin,
		DelayMax:    raw.DelayMax,
		Timeout:     raw.Timeout,
		UserAgent:   raw.UserAgent,
		WorkerCount: raw.WorkerCount,
		AuthorBios:  raw.AuthorBios,
		Database:    raw.Database,
		NoDatabase:  raw.NoDatabase,
		Serve:       raw.Serve,
		Port:        raw.Port,
		Timezone:    raw.Timezone,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	normalizeDelays(cfg)

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func normalizeDelays(cfg *Cfg) {
	if cfg.DelayMin < 0 {
		cfg.DelayMin = 0
	}
	if cfg.DelayMax < cfg.DelayMin {
		fmt.Printf("Warning: delay-max %.1fs is below delay-min %.1fs, using delay-min for both\n", cfg.DelayMax, cfg.DelayMin)
		cfg.DelayMax = cfg.DelayMin
	}
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
