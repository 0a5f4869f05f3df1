package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, passwordCost, cost)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("correct horse battery", "not-a-hash"))
}

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"customer@fortizbank.com":       true,
		"ops.team+kyc@mail.fortiz.bank": true,
		"no-at-sign":                    false,
		"@fortizbank.com":               false,
		"":                              false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsEmail(in), in)
	}
}

func TestReference(t *testing.T) {
	ts := time.UnixMilli(1718000000123)
	assert.Equal(t, "TXN-1718000000123", Reference("TXN", ts))
	assert.Equal(t, "TRF-1718000000123", Reference("TRF", ts))
}
