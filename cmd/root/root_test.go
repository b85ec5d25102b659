package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierFallsBackToDefault(t *testing.T) {
	// Outside cobra PersistentPreRun no classifier has been built yet.
	assert.NotNil(t, Classifier())
}

func TestEngineIsUsableWithoutPreRun(t *testing.T) {
	assert.NotNil(t, Engine())
}

func TestInitRegistersSharedFlags(t *testing.T) {
	Init()

	input := Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, input)
	assert.Equal(t, "i", input.Shorthand)

	output := Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}
