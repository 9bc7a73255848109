package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("с3кретно")
	require.NoError(t, err)
	assert.NotEqual(t, "с3кретно", hash)

	assert.NoError(t, CheckPassword(hash, "с3кретно"))
	assert.Error(t, CheckPassword(hash, "другой"))
}
