package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/pkg/docbuild"
)

func TestConfToStdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runConf(context.Background(), []string{"-o", "-", "-release", "2.0.0"}, &buf))

	assert.Contains(t, buf.String(), "project = \"AgIsoStack++\"\n")
	assert.Contains(t, buf.String(), "release = \"2.0.0\"\n")
}

func TestConfToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source", "conf.py")

	var buf bytes.Buffer
	require.NoError(t, runConf(context.Background(), []string{"-o", path}, &buf))
	assert.Contains(t, buf.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "breathe_default_project = \"AgIsoStack\"")
}

func TestPrepare(t *testing.T) {
	var dirs []string
	opts := docbuild.PrepareOptions{
		Getenv: func(k string) string {
			if k == docbuild.ReadTheDocsEnv {
				return "True"
			}
			return ""
		},
		Run: func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
			dirs = append(dirs, dir)
			return nil, nil
		},
	}

	var buf bytes.Buffer
	require.NoError(t, runPrepare(context.Background(), []string{"-dir", "../.."}, &buf, opts))
	assert.Equal(t, []string{"../.."}, dirs)
	assert.Contains(t, buf.String(), "Generated Doxygen XML in ../..")
}

func TestPrepareSkipped(t *testing.T) {
	opts := docbuild.PrepareOptions{
		Getenv: func(string) string { return "" },
		Run: func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
			t.Fatal("doxygen must not run")
			return nil, nil
		},
	}

	var buf bytes.Buffer
	require.NoError(t, runPrepare(context.Background(), nil, &buf, opts))
	assert.Contains(t, buf.String(), "skipping")
}
