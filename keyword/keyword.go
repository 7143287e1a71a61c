// Package keyword maps directive keywords to the descriptors of the
// arguments they take.
package keyword

import (
	"errors"
	"fmt"

	"github.com/andrewpillar/args"
	"github.com/tidwall/btree"
)

var (
	ErrUnknownKeyword   = errors.New("unknown keyword")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
)

// Entry is a keyword along with the arguments it takes.
type Entry struct {
	Name       string
	Descriptor args.Descriptor
	Help       string
}

// Table holds keywords in name order.
type Table struct {
	parser  *args.Parser
	entries *btree.Map[string, Entry]
}

// New returns an empty table. Arguments are parsed with p, or with a parser
// with no options if p is nil.
func New(p *args.Parser) *Table {
	if p == nil {
		p = args.NewParser()
	}

	return &Table{
		parser:  p,
		entries: btree.NewMap[string, Entry](0),
	}
}

// Register adds a keyword taking arguments described by the signature sig.
// See args.ParseSignature for the signature format.
func (t *Table) Register(name, sig, help string) error {
	d, err := args.ParseSignature(sig)

	if err != nil {
		return fmt.Errorf("keyword %s: %w", name, err)
	}
	return t.Add(Entry{Name: name, Descriptor: d, Help: help})
}

// Add adds the entry to the table.
func (t *Table) Add(e Entry) error {
	if e.Name == "" {
		return errors.New("keyword with no name")
	}

	if _, ok := t.entries.Get(e.Name); ok {
		return fmt.Errorf("%w %s", ErrDuplicateKeyword, e.Name)
	}

	t.entries.Set(e.Name, e)
	return nil
}

// Lookup returns the entry for the keyword.
func (t *Table) Lookup(name string) (Entry, bool) {
	return t.entries.Get(name)
}

// Len returns the number of keywords in the table.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Each calls fn for each entry in name order until fn returns false.
func (t *Table) Each(fn func(Entry) bool) {
	t.entries.Scan(func(_ string, e Entry) bool {
		return fn(e)
	})
}

// Parse parses the arguments given to the keyword.
func (t *Table) Parse(name, in string) (*args.List, error) {
	e, ok := t.Lookup(name)

	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownKeyword, name)
	}

	l, err := t.parser.Parse(in, e.Descriptor)

	if err != nil {
		return nil, fmt.Errorf("keyword %s: %w", name, err)
	}
	return l, nil
}
