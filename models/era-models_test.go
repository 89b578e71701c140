package models_test

import (
	"testing"

	"github.com/krishkalaria12/chrono-snap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErasAreComplete(t *testing.T) {
	eras := models.Eras()
	require.Len(t, eras, 8)

	seen := make(map[string]bool)
	for _, era := range eras {
		assert.NotEmpty(t, era.ID)
		assert.NotEmpty(t, era.Name, era.ID)
		assert.NotEmpty(t, era.Prompt, era.ID)
		assert.False(t, seen[era.ID], "duplicate era %s", era.ID)
		seen[era.ID] = true

		found, ok := models.LookupEra(era.ID)
		require.True(t, ok, era.ID)
		assert.Equal(t, era, found)
	}
}

func TestLookupUnknownEra(t *testing.T) {
	_, ok := models.LookupEra("atlantis")
	assert.False(t, ok)

	_, ok = models.LookupEra("")
	assert.False(t, ok)
}

func TestErasReturnsCopy(t *testing.T) {
	eras := models.Eras()
	eras[0].Name = "changed"

	assert.NotEqual(t, "changed", models.Eras()[0].Name)
}
