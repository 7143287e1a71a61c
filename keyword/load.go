package keyword

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/andrewpillar/args"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a keyword file.
type Format uint

const (
	TOML Format = iota + 1 // toml
	YAML                   // yaml
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", uint(f))
}

// DetectFormat returns the format of a keyword file from its extension.
// Files that are not YAML are taken to be TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

type fileEntry struct {
	Name string `toml:"name" yaml:"name"`
	Args string `toml:"args" yaml:"args"`
	Help string `toml:"help" yaml:"help"`
}

type file struct {
	Keywords []fileEntry `toml:"keywords" yaml:"keywords"`
}

// Load reads the keyword file at path into a new table using the parser p.
func Load(path string, p *args.Parser) (*Table, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	t, err := Decode(f, DetectFormat(path), p)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode reads keywords encoded in the given format from r into a new table
// using the parser p.
func Decode(r io.Reader, format Format, p *args.Parser) (*Table, error) {
	var doc file

	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}

	t := New(p)

	for _, e := range doc.Keywords {
		if err := t.Register(e.Name, e.Args, e.Help); err != nil {
			return nil, err
		}
	}
	return t, nil
}
