package fsop

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config declares the non-code-level knobs of an Engine. It exists so
// callers can express engine setup declaratively (a YAML file checked
// into a deployment, say) rather than only through Option values in
// Go code — mirroring the teacher's programOptions/YAML layering, but
// reduced to the knobs that make sense for a library with no CLI.
type Config struct {
	StarredPath string `yaml:"starred-path"`
	LogLevel    string `yaml:"log-level"`
	JSON        bool   `yaml:"json"`

	// SkipFailedBatch mirrors the teacher CLI's --skip-failed flag in
	// name, but not in effect on this engine: Engine.Execute's
	// continue-on-failure behavior is unconditional (its inverse log
	// must cover every action that ran, failed or not, so a caller can
	// always undo what actually happened), not a configurable policy.
	// This field is decoded and returned to the caller for their own
	// use above Execute — e.g. a CLI built on this package deciding
	// whether to keep issuing further batches after one reports
	// failures — but Apply does not turn it into an Option, and no
	// Engine field consults it.
	SkipFailedBatch bool `yaml:"skip-failed-batch"`
}

// LoadConfig decodes a YAML document into a Config, rejecting unknown
// fields the same way the teacher's parseArgs does via
// yaml.Decoder.KnownFields(true).
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("fsop: config is malformed: %w", err)
	}

	if cfg.LogLevel != "" {
		if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("fsop: %w: %q", err, cfg.LogLevel)
		}
	}

	return &cfg, nil
}

// Apply turns a Config into Engine options. The returned logger writes
// to w (typically os.Stderr in a caller's main).
func (cfg *Config) Apply(w io.Writer) []Option {
	level, _ := ParseLogLevel(cfg.LogLevel)

	opts := []Option{
		WithLogger(NewTintLogger(w, level, cfg.JSON)),
	}

	if cfg.StarredPath != "" {
		opts = append(opts, WithStarredPath(cfg.StarredPath))
	}

	return opts
}
