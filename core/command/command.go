// Package command holds the named consumers of the table engine.
// A command knows how a specific tool lays out its table: which parser to
// use, how to prepare the header and where the listing ends. The generic
// "simple" and "sparse" commands apply the engine as-is.
package command

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/gaurav-prasanna/tablepipe/core/table"
)

// ErrUnknownCommand is returned by Lookup for unregistered names.
var ErrUnknownCommand = errors.New("unknown command")

// ParseFunc converts clean lines (header first) into records.
type ParseFunc func(lines []string, opts ...table.Option) ([]table.Record, error)

// Command is a named table consumer. It implements core.Parser.
type Command struct {
	Name        string
	Description string
	// Compatible lists the GOOS values the producing tool runs on.
	// Empty means any platform.
	Compatible []string
	// ASCIIOnly asks the preprocessor to drop non-ASCII runes.
	ASCIIOnly bool

	parse ParseFunc
}

// Parse runs the command's parser.
func (c *Command) Parse(lines []string, opts ...table.Option) ([]table.Record, error) {
	return c.parse(lines, opts...)
}

// IsCompatible reports whether output from goos is expected to parse.
func (c *Command) IsCompatible(goos string) bool {
	return len(c.Compatible) == 0 || slices.Contains(c.Compatible, goos)
}

// registry maps command names to their consumer (explicit, no reflection).
var registry = map[string]*Command{
	"simple": {
		Name:        "simple",
		Description: "Whitespace-separated table; only the last column may contain spaces",
		parse:       table.SimpleParse,
	},
	"sparse": {
		Name:        "sparse",
		Description: "Position-aligned table; cells may be blank or contain spaces",
		parse:       table.SparseParse,
	},
	"systemctl": {
		Name:        "systemctl",
		Description: "`systemctl -a` unit listing",
		Compatible:  []string{"linux"},
		ASCIIOnly:   true,
		parse:       parseSystemctl,
	},
}

// Lookup returns the command registered under name.
func Lookup(name string) (*Command, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownCommand, name, Names())
	}
	return c, nil
}

// Names returns every registered command name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
