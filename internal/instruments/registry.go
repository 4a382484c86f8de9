package instruments

import (
	"strings"
)

// Info describes how prices of a symbol map to pips and to USD.
type Info struct {
	PipDecimalPlace int  `yaml:"pip_decimal_place" json:"pip_decimal_place"`
	USDIsQuote      bool `yaml:"usd_is_quote" json:"usd_is_quote"`
	USDIsBase       bool `yaml:"usd_is_base" json:"usd_is_base"`
}

// Fallback is returned for symbols the registry does not know.
var Fallback = Info{PipDecimalPlace: 4}

// Registry is a read-only symbol table. The zero value is not usable, use
// Default or LoadFile.
type Registry struct {
	table map[string]Info
}

var defaultRegistry = newRegistry(builtin)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

func newRegistry(src map[string]Info) *Registry {
	table := make(map[string]Info, len(src))
	for sym, info := range src {
		table[normalize(sym)] = info
	}
	return &Registry{table: table}
}

// Lookup reports the entry for symbol and whether it exists.
func (r *Registry) Lookup(symbol string) (Info, bool) {
	info, ok := r.table[normalize(symbol)]
	return info, ok
}

// Info returns the entry for symbol or Fallback.
func (r *Registry) Info(symbol string) Info {
	if info, ok := r.Lookup(symbol); ok {
		return info
	}
	return Fallback
}

// Len returns the number of known symbols.
func (r *Registry) Len() int {
	return len(r.table)
}

// Each calls fn for every entry. Iteration order is unspecified.
func (r *Registry) Each(fn func(symbol string, info Info)) {
	for sym, info := range r.table {
		fn(sym, info)
	}
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
