package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicgen/internal/cli"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
alphabet: "0123456789"
init: "007"
end: "010"
file: out.txt
prefix: pw-
buffer_size: 4096
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", c.Alphabet)
	assert.Equal(t, "007", c.Init)
	assert.Equal(t, "010", c.End)
	assert.Equal(t, "out.txt", c.File)
	assert.Equal(t, "pw-", c.Prefix)
	assert.Equal(t, 4096, c.BufferSize)
}

func TestLoadEmptyFile(t *testing.T) {
	c, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, c)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeFile(t, "alphabbet: abc\n"))
	require.Error(t, err)
}

func TestLoadNegativeBuffer(t *testing.T) {
	_, err := Load(writeFile(t, "buffer_size: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestMergeFlagsWin(t *testing.T) {
	fs := cli.NewFlagSet("dicgen")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, []string{"--alphabet", "xy", "--prefix", ""})
	require.NoError(t, err)

	Merge(&opts, &Config{
		Alphabet:   "ab",
		Init:       "aa",
		End:        "bb",
		Prefix:     "cfg-",
		BufferSize: 128,
	})

	// Explicit flags keep their values, even when set to the empty string.
	assert.Equal(t, "xy", opts.Alphabet)
	assert.Equal(t, "", opts.Prefix)
	// Unset flags are filled from the file.
	assert.Equal(t, "aa", opts.Init)
	assert.Equal(t, "bb", opts.End)
	assert.Equal(t, 128, opts.Buffer)
}
