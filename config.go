package anxiety

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Syntax defines how directive lines are recognized.
type Syntax struct {
	// Prefix of a normalized line that opens a region. Matched
	// case-insensitively.
	OpenDirective string `toml:"open_directive"`
	// Prefix of a normalized line that closes a region.
	CloseDirective string `toml:"close_directive"`
	// Characters removed from region names.
	IgnoredChars string `toml:"ignored_chars"`
	// An open directive containing this marks its region as canonical.
	CanonicalMarker string `toml:"canonical_marker"`
}

// Config holds all settings of a run. The zero value is not usable, start
// from DefaultConfig.
type Config struct {
	Syntax

	// Names of the normalizers applied to each input line.
	Preprocess []string `toml:"preprocess"`
	// Names of the normalizers applied to a region's text on close.
	Postprocess []string `toml:"postprocess"`

	// Visual width of the diff block rules.
	Width int `toml:"width"`
	// Diff granularity: chars, words or lines.
	Granularity string `toml:"granularity"`
}

const (
	DefaultOpenDirective   = "% begin quote"
	DefaultCloseDirective  = "% end quote"
	DefaultIgnoredChars    = ":/|[]{}!"
	DefaultCanonicalMarker = "!"
	DefaultWidth           = 70
)

func DefaultSyntax() Syntax {
	return Syntax{
		OpenDirective:   DefaultOpenDirective,
		CloseDirective:  DefaultCloseDirective,
		IgnoredChars:    DefaultIgnoredChars,
		CanonicalMarker: DefaultCanonicalMarker,
	}
}

func DefaultConfig() Config {
	return Config{
		Syntax:      DefaultSyntax(),
		Preprocess:  []string{NormSquashWhitespace},
		Postprocess: []string{NormSquashSpacesTabs, NormReplaceSingleNewlines},
		Width:       DefaultWidth,
		Granularity: string(GranularityChars),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys not known to
// Config are an error.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(file, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", file, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", file, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) Validate() error {
	switch {
	case strings.TrimSpace(cfg.OpenDirective) == "":
		return fmt.Errorf("empty open directive")
	case strings.TrimSpace(cfg.CloseDirective) == "":
		return fmt.Errorf("empty close directive")
	case strings.EqualFold(cfg.OpenDirective, cfg.CloseDirective):
		return fmt.Errorf("open and close directive are both '%s'", cfg.OpenDirective)
	case cfg.Width < 0:
		return fmt.Errorf("negative width %d", cfg.Width)
	}
	if _, err := ParseGranularity(cfg.Granularity); err != nil {
		return err
	}
	if _, err := PipelineByNames(cfg.Preprocess); err != nil {
		return fmt.Errorf("preprocess: %w", err)
	}
	if _, err := PipelineByNames(cfg.Postprocess); err != nil {
		return fmt.Errorf("postprocess: %w", err)
	}
	return nil
}
