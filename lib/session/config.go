package session

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds strictness options for a Session. The zero value is the
// strict, intended SPLPv1 grammar; each knob restores the behavior of a
// legacy validator build for deployments that depended on it.
type Config struct {
	// AllowEmptyVersion accepts a VERSION reply whose digit suffix is empty
	// ("VERSION " with nothing after the space). The protocol defines the
	// version as an integer > 0, so this is off by default.
	AllowEmptyVersion bool

	// WideDataAlphabet additionally admits ':' and ';' in data reply tokens.
	// A legacy build used an inclusive byte range that let them through.
	WideDataAlphabet bool

	// LenientVersionDirection skips the B->A direction check while waiting
	// for a VERSION reply, matching a legacy build that omitted it.
	LenientVersionDirection bool
}

// DefaultConfig returns the strict configuration.
func DefaultConfig() Config {
	return Config{}
}

// fileConfig maps config.toml keys onto Config fields.
type fileConfig struct {
	AllowEmptyVersion       bool `toml:"allow_empty_version"`
	WideDataAlphabet        bool `toml:"wide_data_alphabet"`
	LenientVersionDirection bool `toml:"lenient_version_direction"`
}

// LoadConfig reads a TOML config file, overlaying any keys present onto the
// strict defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load validator config: %w", err)
	}

	if meta.IsDefined("allow_empty_version") {
		cfg.AllowEmptyVersion = raw.AllowEmptyVersion
	}
	if meta.IsDefined("wide_data_alphabet") {
		cfg.WideDataAlphabet = raw.WideDataAlphabet
	}
	if meta.IsDefined("lenient_version_direction") {
		cfg.LenientVersionDirection = raw.LenientVersionDirection
	}

	return cfg, nil
}
