// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"sigrank/internal/output"
	"sigrank/internal/writers"
)

// DefaultFile is read when no --config is given; it may be absent.
const DefaultFile = "sigrank.toml"

// Config is the file-backed run configuration. Flags override it.
type Config struct {
	Archive  string `toml:"archive"`
	Output   string `toml:"output"`
	Format   string `toml:"format"` // "" = from Output's extension
	Top      int    `toml:"top"`    // <= 0 keeps all records
	Threads  int    `toml:"threads"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	Progress bool   `toml:"progress"`
}

// Default mirrors the historical fixed paths of the tool.
func Default() Config {
	return Config{
		Archive:  "uniprot_sprot.fasta",
		Output:   "sorted_by_user_sequence.csv",
		LogLevel: "info",
		Progress: true,
	}
}

// Load reads path over Default(). An empty path tries DefaultFile and
// silently keeps the defaults when it does not exist; a named file must exist.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ResolveFormat picks the output format: explicit Format, else the Output
// extension, else csv.
func (c Config) ResolveFormat() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".txt", ".text":
		return output.FormatText
	case ".json":
		return output.FormatJSON
	case ".jsonl", ".ndjson":
		return output.FormatJSONL
	default:
		return output.FormatCSV
	}
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Archive == "" {
		return errors.New("archive path is empty")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if f := c.ResolveFormat(); !writers.Known(f) {
		return fmt.Errorf("invalid format %q (want %s)", f, strings.Join(writers.Registered(), " | "))
	}
	if c.Threads < 0 {
		return errors.New("threads must be ≥ 0")
	}
	return nil
}
