package mocks

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// The generated header, the mockery config and tools.go must all target the
// same mockery major version, otherwise regenerating changes the layout.
func TestMockeryVersionsAgree(t *testing.T) {
	mock, err := os.ReadFile("mock_Doer.go")
	require.NoError(t, err)
	m := regexp.MustCompile(`Code generated by mockery v(\d+)\.`).FindSubmatch(mock)
	require.NotNil(t, m)
	major := string(m[1])
	assert.Equal(t, "2", major)

	tools, err := os.ReadFile(filepath.Join("..", "..", "..", "tools.go"))
	require.NoError(t, err)
	assert.Contains(t, string(tools), "mockery v"+major+" ")

	raw, err := os.ReadFile(filepath.Join("..", "..", "..", ".mockery.yaml"))
	require.NoError(t, err)
	var cfg map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	// with-expecter and outpkg only exist in the v2 config format.
	assert.Equal(t, true, cfg["with-expecter"])
	assert.Equal(t, "mocks", cfg["outpkg"])
}
