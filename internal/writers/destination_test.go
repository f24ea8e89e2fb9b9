package writers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStream(t *testing.T) {
	var out bytes.Buffer
	d, err := Open("", &out, 0)
	require.NoError(t, err)

	n, err := d.WriteLine([]byte("aa"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Buffered: nothing visible until Close flushes.
	assert.Zero(t, out.Len())
	require.NoError(t, d.Close())
	assert.Equal(t, "aa\n", out.String())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	d, err := Open(path, nil, 16)
	require.NoError(t, err)
	for _, rec := range []string{"007", "008", "009", "010"} {
		_, err := d.WriteLine([]byte(rec))
		require.NoError(t, err)
	}
	require.NoError(t, d.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "007\n008\n009\n010\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("file content mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenFileBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "out.txt"), nil, 0)
	require.Error(t, err)
}

func TestCloseSurfacesWriteError(t *testing.T) {
	pr, pw := io.Pipe()
	require.NoError(t, pr.Close())

	d, err := Open("", pw, 8)
	require.NoError(t, err)
	_, err = d.WriteLine([]byte("0123456789")) // larger than the buffer
	if err == nil {
		err = d.Close()
	}
	require.Error(t, err)
	assert.True(t, IsBrokenPipe(err))
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
}
