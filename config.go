package logger

import (
	"strings"

	"github.com/BurntSushi/toml"
)

// Config declares which sinks Init builds and how each behaves. A nil sink
// section leaves that sink disabled; at least one must be present.
type Config struct {
	Console *ConsoleSink `toml:"console" validate:"omitempty"`
	File    *FileSink    `toml:"file" validate:"omitempty"`

	// WithCaller annotates every entry with the file and line of the
	// logging call site.
	WithCaller bool `toml:"with_caller"`
}

// ConsoleSink configures the human-readable sink on stderr.
type ConsoleSink struct {
	// Level is the threshold; entries ranked at or above this urgency are
	// emitted.
	Level Level `toml:"level" validate:"min=0,max=5"`

	// NoColor disables ANSI colors. Colors are also dropped automatically
	// when stderr is not a terminal.
	NoColor bool `toml:"no_color"`

	// TimeFormat overrides the timestamp layout of rendered lines. Empty
	// keeps the backend's default.
	TimeFormat string `toml:"time_format"`
}

// FileSink configures the daily rolling file sink. Files are written under
// <Path>/logs, one per calendar day, named after the day they belong to.
type FileSink struct {
	// Path is the directory under which the logs directory is created.
	Path string `toml:"path" validate:"required"`

	// Level is the threshold; entries ranked at or above this urgency are
	// emitted.
	Level Level `toml:"level" validate:"min=0,max=5"`

	// LogAsJSON selects one JSON record per line instead of readable text.
	LogAsJSON bool `toml:"log_as_json"`

	// MaxFileCount bounds how many calendar days of files are retained.
	// Older days are deleted when a new day starts. Must be at least one.
	MaxFileCount int `toml:"max_file_count" validate:"min=1"`

	// MaxFileSizeMB caps the size of a single day's file; past the cap the
	// day is chunked into timestamped pieces. Zero means no cap.
	MaxFileSizeMB int `toml:"max_file_size_mb" validate:"min=0"`

	// Compress gzips chunked pieces of oversized days.
	Compress bool `toml:"compress"`
}

// LoadConfig reads a Config from a TOML file and validates it.
func LoadConfig(path string) (*Config, error) {
	const op Op = "logger.LoadConfig"

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, newInitError(op, errMsgReadConfig, err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

const defaultMaxFileCount = 14

// DefaultConfig returns a ready-to-use config for the given runtime
// environment. The console shows debug detail unless env is production,
// which trims it to info. A non-empty dir adds a JSON file sink under dir
// keeping the most recent two weeks of daily files.
func DefaultConfig(env, dir string) *Config {
	cfg := &Config{
		Console: &ConsoleSink{Level: LevelDebug},
	}
	switch strings.ToLower(env) {
	case "production", "prod":
		cfg.Console.Level = LevelInfo
	}
	if dir != emptyString {
		cfg.File = &FileSink{
			Path:         dir,
			Level:        LevelInfo,
			LogAsJSON:    true,
			MaxFileCount: defaultMaxFileCount,
		}
	}
	return cfg
}
