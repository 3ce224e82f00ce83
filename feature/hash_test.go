package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash_DeterministicForEqualInput(t *testing.T) {
	a, err := ContentHash([]byte("hello world"))
	require.NoError(t, err)
	b, err := ContentHash([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestContentHash_DiffersForDifferentInput(t *testing.T) {
	a, err := ContentHash([]byte("hello"))
	require.NoError(t, err)
	b, err := ContentHash([]byte("world"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
