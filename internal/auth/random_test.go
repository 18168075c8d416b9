package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateRandomToken()
	require.NoError(t, err)

	// 32 байта в hex = 64 символа
	assert.Len(t, token, 64)
	assert.Regexp(t, "^[0-9a-f]+$", token)

	other, err := GenerateRandomToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
