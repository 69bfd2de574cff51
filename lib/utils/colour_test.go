package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColourParse(t *testing.T) {
	c, err := ColourParse("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, float32(1), c.R)
	assert.Equal(t, float32(0), c.G)
	assert.Equal(t, float32(0), c.B)
	assert.InDelta(t, 0.502, c.A, 0.001)
}

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#00000044"))
	assert.False(t, ColourValidate("#000044"))
	assert.False(t, ColourValidate("x#00000044"))
	assert.False(t, ColourValidate("#00000044ff"))

	_, err := ColourParse("white")
	assert.Error(t, err)
}
