// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"sigrank/internal/config"
	"sigrank/internal/version"
	"sigrank/internal/writers"
)

// Options holds all CLI flags. Set records which flags were given explicitly,
// so only those override the config file.
type Options struct {
	ConfigPath string

	// Input / output
	Archive string
	Output  string
	Format  string

	// Query
	Query string
	Top   string // parsed leniently: anything but a non-negative integer means all

	// Performance
	Threads int

	// Logging
	LogLevel   string
	LogFile    string
	NoProgress bool
	Quiet      bool

	Version bool

	Set map[string]bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: rank FASTA records by rank-signal distance to a query

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigPath, "config", "", "TOML config file [./"+config.DefaultFile+" if present]")

	fs.StringVar(&opt.Archive, "archive", "", "FASTA archive ('-' = stdin, .gz ok) [config]")
	fs.StringVar(&opt.Output, "output", "", "output file ('-' = stdout) [config]")
	fs.StringVar(&opt.Format, "format", "", "output format: "+strings.Join(writers.Registered(), " | ")+" [by output extension]")

	fs.StringVar(&opt.Query, "query", "", "query sequence (prompted if absent)")
	fs.StringVar(&opt.Top, "top", "", "keep the N closest records (empty/invalid/0 = all)")

	fs.IntVar(&opt.Threads, "threads", 0, "number of scoring workers (0 = all CPUs) [0]")

	fs.StringVar(&opt.LogLevel, "log-level", "", "debug | info | warn | error [info]")
	fs.StringVar(&opt.LogFile, "log-file", "", "also append logs to this file")
	fs.BoolVar(&opt.NoProgress, "no-progress", false, "disable the progress bar [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "log errors only, no progress bar [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.Set[f.Name] = true })

	// Validation
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Format != "" && !writers.Known(strings.ToLower(opt.Format)) {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.Set["archive"] && opt.Archive == "" {
		return opt, errors.New("--archive must not be empty")
	}
	if opt.Set["output"] && opt.Output == "" {
		return opt, errors.New("--output must not be empty")
	}
	return opt, nil
}

// Apply overlays explicitly set flags onto cfg. --top is not applied here;
// it is resolved by the caller because an invalid value is not an error.
func (o Options) Apply(cfg *config.Config) {
	if o.Set["archive"] {
		cfg.Archive = o.Archive
	}
	if o.Set["output"] {
		cfg.Output = o.Output
	}
	if o.Set["format"] {
		cfg.Format = o.Format
	}
	if o.Set["threads"] {
		cfg.Threads = o.Threads
	}
	if o.Set["log-level"] {
		cfg.LogLevel = o.LogLevel
	}
	if o.Set["log-file"] {
		cfg.LogFile = o.LogFile
	}
	if o.NoProgress || o.Quiet {
		cfg.Progress = false
	}
}
