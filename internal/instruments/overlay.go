package instruments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the on-disk format for custom instruments:
//
//	instruments:
//	  GER30: {pip_decimal_place: 1}
//	  USDRUB: {pip_decimal_place: 4, usd_is_base: true}
type overlayFile struct {
	Instruments map[string]Info `yaml:"instruments"`
}

// LoadFile returns a registry made of the built-in table plus the entries in
// the YAML file at path. File entries replace built-in ones.
func LoadFile(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse is LoadFile for an in-memory document.
func Parse(b []byte) (*Registry, error) {
	var f overlayFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing instruments: %w", err)
	}

	merged := make(map[string]Info, len(builtin)+len(f.Instruments))
	for sym, info := range builtin {
		merged[sym] = info
	}
	for sym, info := range f.Instruments {
		if err := info.validate(); err != nil {
			return nil, fmt.Errorf("instrument %s: %w", sym, err)
		}
		merged[sym] = info
	}
	return newRegistry(merged), nil
}

func (i Info) validate() error {
	if i.PipDecimalPlace < 0 {
		return fmt.Errorf("pip_decimal_place must be >= 0, got %d", i.PipDecimalPlace)
	}
	if i.USDIsQuote && i.USDIsBase {
		return fmt.Errorf("usd_is_quote and usd_is_base are mutually exclusive")
	}
	return nil
}
