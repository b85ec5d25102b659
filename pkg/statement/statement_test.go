package statement

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFileDispatchesByExtension(t *testing.T) {
	engine := NewEngine(nil, nil)

	csvPath := writeInput(t, "statement.csv",
		"Date,Description,Amount\n03/14/2024,Coffee Shop,-4.50\n")
	csvResult, err := engine.ParseFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, 1, csvResult.TotalCount)
	assert.Equal(t, "Coffee Shop", csvResult.Transactions[0].Description)

	txtPath := writeInput(t, "statement.txt",
		"03/14/2024  COFFEE SHOP  4.50-\n")
	txtResult, err := engine.ParseFile(txtPath)
	require.NoError(t, err)
	require.Equal(t, 1, txtResult.TotalCount)
	assert.Equal(t, "COFFEE SHOP", txtResult.Transactions[0].Description)
}

func TestConvertFileWritesNormalizedCSV(t *testing.T) {
	engine := NewEngine(nil, nil)
	input := writeInput(t, "statement.csv",
		"Date,Description,Amount\n03/14/2024,Coffee Shop,-4.50\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, engine.ConvertFile(input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Description,Merchant,Amount,Type", lines[0])
	assert.Contains(t, lines[1], "Coffee Shop")
}

func TestConvertFileDefaultOutputPath(t *testing.T) {
	engine := NewEngine(nil, nil)
	input := writeInput(t, "statement.csv",
		"Date,Description,Amount\n03/14/2024,Coffee Shop,-4.50\n")

	require.NoError(t, engine.ConvertFile(input, ""))

	derived := strings.TrimSuffix(input, ".csv") + ".normalized.csv"
	_, err := os.Stat(derived)
	assert.NoError(t, err)
}

func TestConvertFileMissingInput(t *testing.T) {
	engine := NewEngine(nil, nil)
	err := engine.ConvertFile(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.Error(t, err)
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "dir/statement.normalized.csv", DefaultOutputPath("dir/statement.txt"))
}
