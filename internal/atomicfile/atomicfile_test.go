package atomicfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.hpp")

	n, err := Write(context.Background(), path, strings.NewReader("hello"), 0o644)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cpp")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	require.NoError(t, WriteBytes(context.Background(), path, []byte("new"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteCancelledKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cpp")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Write(ctx, path, strings.NewReader("replacement"), 0o644)
	require.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestRemoveMissing(t *testing.T) {
	assert.NoError(t, Remove(filepath.Join(t.TempDir(), "nope")))
}
