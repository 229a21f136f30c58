package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

func TestLoadDictionaryStandard(t *testing.T) {
	dict, err := loadDictionary("", "")
	require.NoError(t, err)
	assert.Same(t, ddi.Standard(), dict)

	_, err = loadDictionary("", "run-1")
	assert.Error(t, err)
}

func TestLoadDictionaryFromHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.CreateRun(&store.Run{ID: "run-1"}))
	require.NoError(t, s.SaveEntries("run-1", []ddi.Entry{{DDI: 7, Name: "Custom", UnitName: "n.a.", Resolution: 1}}))
	require.NoError(t, s.CompleteRun("run-1", 1, 0))
	require.NoError(t, s.Close())

	dict, err := loadDictionary(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Custom", dict.Name(7))
	assert.Equal(t, "Unknown", dict.Name(141))

	dict, err = loadDictionary(path, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 1, dict.Len())
}
