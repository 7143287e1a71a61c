package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewpillar/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(argv)

	err := cmd.Execute()
	return out.String(), err
}

func writeTable(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "keywords.yaml")

	err := os.WriteFile(path, []byte(`keywords:
  - name: rate
    args: "1:time,size"
    help: event rate
  - name: be_conn
    args: "0:be"
`), 0o644)

	require.NoError(t, err)
	return path
}

func Test_ParseSig(t *testing.T) {
	out, err := run(t, "parse", "--sig", "2:uint,sint,str", "10,-3")

	require.NoError(t, err)
	assert.Equal(t, "0\tunsigned integer\tunsigned integer\t10\n"+
		"1\tsigned integer\tsigned integer\t-3\n"+
		"2\tstring\t-\t(absent)\n", out)
}

func Test_ParseKeyword(t *testing.T) {
	table := writeTable(t)

	out, err := run(t, "--table", table, "parse", "-k", "rate", "2s,16k")

	require.NoError(t, err)
	assert.Equal(t, "0\tdelay\tunsigned integer\t2000 (2s)\n"+
		"1\tsize\tunsigned integer\t16384 (16 KiB)\n", out)

	out, err = run(t, "--table", table, "parse", "-k", "be_conn", "app")

	require.NoError(t, err)
	assert.Equal(t, "0\tbackend\tbackend\t\"app\"\n", out)
}

func Test_ParseFailure(t *testing.T) {
	_, err := run(t, "parse", "--sig", "2:uint,uint,uint", "10,20,30,40")

	assert.True(t, errors.Is(err, args.ErrTooManyArgs))

	_, err = run(t, "parse", "10")

	assert.Error(t, err)

	_, err = run(t, "parse", "-k", "rate", "10")

	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "parse", "--sig", "uint", "10")

	assert.Error(t, err)
}

func Test_Keywords(t *testing.T) {
	out, err := run(t, "--table", writeTable(t), "keywords")

	require.NoError(t, err)
	assert.Equal(t, "be_conn\t0:be\t\nrate\t1:time,size\tevent rate\n", out)
}

func Test_Mask(t *testing.T) {
	out, err := run(t, "mask", "2:uint,uint,uint")

	require.NoError(t, err)
	assert.Equal(t, "mask\t0x00001112\n"+
		"signature\t2:uint,uint,uint\n"+
		"0\tunsigned integer\tmandatory\n"+
		"1\tunsigned integer\tmandatory\n"+
		"2\tunsigned integer\toptional\n", out)
}

func Test_MaskTooWide(t *testing.T) {
	_, err := run(t, "mask", "uint,uint,uint,uint,uint,uint,uint,uint")

	assert.Error(t, err)

	out, err := run(t, "parse", "--sig", "uint,uint,uint,uint,uint,uint,uint,be", "1,2,3,4,5,6,7,app")

	require.NoError(t, err)
	assert.Contains(t, out, "7\tbackend\tbackend\t\"app\"\n")
}
