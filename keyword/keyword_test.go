package keyword

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrewpillar/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(t *Table) []string {
	nn := make([]string, 0, t.Len())

	t.Each(func(e Entry) bool {
		nn = append(nn, e.Name)
		return true
	})
	return nn
}

func Test_Table(t *testing.T) {
	tab := New(nil)

	require.NoError(t, tab.Register("rate", "1:time,uint", "event rate"))
	require.NoError(t, tab.Register("be_conn", "0:be", ""))
	require.NoError(t, tab.Register("add", "sint", ""))

	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, []string{"add", "be_conn", "rate"}, names(tab))

	e, ok := tab.Lookup("rate")

	require.True(t, ok)
	assert.Equal(t, 1, e.Descriptor.Min)
	assert.Equal(t, []args.Type{args.Time, args.UInt}, e.Descriptor.Types)
	assert.Equal(t, "event rate", e.Help)

	err := tab.Register("rate", "uint", "")

	assert.True(t, errors.Is(err, ErrDuplicateKeyword))

	err = tab.Register("bad", "1:nope", "")

	assert.Error(t, err)
	assert.Equal(t, 3, tab.Len())
}

func Test_TableParse(t *testing.T) {
	var handled []string

	tab := New(args.NewParser(args.ErrorHandler(func(_ int, msg string) {
		handled = append(handled, msg)
	})))

	require.NoError(t, tab.Register("rate", "1:time,uint", ""))

	l, err := tab.Parse("rate", "10s,3")

	require.NoError(t, err)
	require.Equal(t, 2, l.N)
	assert.Equal(t, uint64(10000), l.Args[0].Uint)
	assert.Equal(t, uint64(3), l.Args[1].Uint)

	_, err = tab.Parse("rate", "10s,3,4")

	assert.True(t, errors.Is(err, args.ErrTooManyArgs))
	assert.EqualError(t, err, "keyword rate: end of arguments expected at '4'")
	assert.Len(t, handled, 1)

	_, err = tab.Parse("nope", "")

	assert.True(t, errors.Is(err, ErrUnknownKeyword))
}

func Test_LoadYAML(t *testing.T) {
	tab, err := Load(filepath.Join("testdata", "keywords.yaml"), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"be_conn", "rate", "src_in_net", "src_port", "table_cnt"}, names(tab))

	e, ok := tab.Lookup("src_in_net")

	require.True(t, ok)
	assert.Equal(t, 2, e.Descriptor.Min)
	assert.Equal(t, []args.Type{args.IPv4, args.Msk4}, e.Descriptor.Types)

	e, ok = tab.Lookup("src_port")

	require.True(t, ok)
	assert.Equal(t, 0, e.Descriptor.Max())

	l, err := tab.Parse("src_in_net", "10.0.0.0,8")

	require.NoError(t, err)
	assert.Equal(t, "255.0.0.0", l.Args[1].Addr.String())
}

func Test_LoadTOML(t *testing.T) {
	tab, err := Load(filepath.Join("testdata", "keywords.toml"), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"add_offset", "bufsize", "srv_is_up"}, names(tab))

	l, err := tab.Parse("add_offset", "-4")

	require.NoError(t, err)
	assert.Equal(t, 1, l.N)
	assert.Equal(t, int64(-4), l.Args[0].Sint)

	l, err = tab.Parse("bufsize", "16k")

	require.NoError(t, err)
	assert.Equal(t, uint64(16384), l.Args[0].Uint)
}

func Test_LoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate.yaml"), nil)

	assert.True(t, errors.Is(err, ErrDuplicateKeyword))

	_, err = Load(filepath.Join("testdata", "missing.toml"), nil)

	assert.Error(t, err)

	_, err = Decode(strings.NewReader("keywords = 1"), TOML, nil)

	assert.Error(t, err)

	_, err = Decode(strings.NewReader(""), Format(9), nil)

	assert.Error(t, err)

	tab, err := Decode(strings.NewReader(""), YAML, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, tab.Len())
}

func Test_DetectFormat(t *testing.T) {
	assert.Equal(t, YAML, DetectFormat("keywords.yaml"))
	assert.Equal(t, YAML, DetectFormat("KEYWORDS.YML"))
	assert.Equal(t, TOML, DetectFormat("keywords.toml"))
	assert.Equal(t, TOML, DetectFormat("keywords"))
}
