package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequential(t *testing.T) {
	assert.Equal(t, "DH000001", Sequential("DH", 0))
	assert.Equal(t, "DH000042", Sequential("DH", 41))
	assert.Equal(t, "SP001000", Sequential("SP", 999))
	// Counts past the padding width still produce a usable code.
	assert.Equal(t, "KH1000000", Sequential("KH", 999999))
}

func TestFallback(t *testing.T) {
	code := Fallback("NH")
	assert.True(t, strings.HasPrefix(code, "NH"))
	assert.Greater(t, len(code), len("NH")+10)

	// A fallback code never collides with a padded sequential code: it is
	// a millisecond timestamp, far longer than six digits.
	assert.NotEqual(t, Sequential("NH", 0), code)
}
