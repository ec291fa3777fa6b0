// internal/utils/crypto_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPNumeric(t *testing.T) {
	code, err := GenerateOTP(6)

	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	s, err := GenerateRandomString(32)

	require.NoError(t, err)
	assert.Len(t, s, 32)
}

func TestHashStringDeterministic(t *testing.T) {
	assert.Equal(t, HashString("sooq"), HashString("sooq"))
	assert.NotEqual(t, HashString("sooq"), HashString("souk"))
	assert.Len(t, HashString("sooq"), 64)
}
