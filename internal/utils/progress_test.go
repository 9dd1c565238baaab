package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar(t *testing.T) {
	bar := NewProgressBar(10, DescScanning)
	require.NotNil(t, bar)

	assert.NoError(t, bar.Add(1))
	assert.NoError(t, bar.Finish())
}

func TestNewProgressBarCompletes(t *testing.T) {
	bar := NewProgressBar(3, DescNodes)

	for i := 0; i < 3; i++ {
		require.NoError(t, bar.Add(1))
	}

	assert.True(t, bar.IsFinished())
}

func TestNewSpinner(t *testing.T) {
	spinner := NewSpinner(DescLocating)
	require.NotNil(t, spinner)

	assert.NoError(t, spinner.Add(1))
	assert.NoError(t, spinner.Finish())
}
