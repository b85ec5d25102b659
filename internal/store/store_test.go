package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stmtkit/bankparse/internal/classify"
)

func TestLoadSetsMissingFileUsesDefaults(t *testing.T) {
	store := NewKeywordStore(filepath.Join(t.TempDir(), "nope.yaml"), nil)

	sets, err := store.LoadSets()

	require.NoError(t, err)
	assert.Equal(t, classify.DefaultSets(), sets)
}

func TestLoadSetsOverridesNonEmptyLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "transfer:\n  - wire out\n  - sweep\nincome:\n  - royalty\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store := NewKeywordStore(path, nil)
	sets, err := store.LoadSets()

	require.NoError(t, err)
	assert.Equal(t, []string{"wire out", "sweep"}, sets.Transfer)
	assert.Equal(t, []string{"royalty"}, sets.Income)
	// Lists absent from the file keep their defaults.
	assert.Equal(t, classify.DefaultSets().Expense, sets.Expense)
}

func TestLoadSetsMalformedFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transfer: [unclosed"), 0o600))

	store := NewKeywordStore(path, nil)
	sets, err := store.LoadSets()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing keywords file")
	assert.Equal(t, classify.DefaultSets(), sets)
}

func TestSaveSetsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keywords.yaml")
	want := classify.Sets{
		Transfer: []string{"sweep"},
		Income:   []string{"royalty"},
		Expense:  []string{"toll"},
	}

	store := NewKeywordStore(path, nil)
	require.NoError(t, store.SaveSets(path, want))

	got, err := store.LoadSets()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
