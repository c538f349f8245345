package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUID(t *testing.T) {
	t.Run("Generates non-empty UUID", func(t *testing.T) {
		id := GenerateUUID()
		assert.NotEmpty(t, id, "GenerateUUID() should not return empty string")
		assert.Len(t, id, 36)
	})

	t.Run("Generates parseable UUID", func(t *testing.T) {
		assert.True(t, IsUUID(GenerateUUID()))
	})

	t.Run("Generates unique UUIDs", func(t *testing.T) {
		ids := make(map[string]bool)
		iterations := 100

		for i := 0; i < iterations; i++ {
			id := GenerateUUID()
			assert.False(t, ids[id], "GenerateUUID() should not generate duplicate UUID: %s", id)
			ids[id] = true
		}

		assert.Len(t, ids, iterations)
	})
}

func TestIsUUID(t *testing.T) {
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("not-a-uuid"))
	assert.True(t, IsUUID("6f1c2a4e-8b0d-4c55-9a3e-2f7d1b9e0c11"))
}
