package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	got, ok := NormalizeEmail("  Carla@Example.COM ")
	assert.True(t, ok)
	assert.Equal(t, "carla@example.com", got)

	got, ok = NormalizeEmail("")
	assert.True(t, ok)
	assert.Empty(t, got)

	for _, bad := range []string{"carla", "carla@", "@example.com", "carla@localhost", "Carla <carla@example.com>"} {
		_, ok := NormalizeEmail(bad)
		assert.False(t, ok, bad)
	}
}
