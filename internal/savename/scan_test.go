package savename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanLiteral(t *testing.T) {
	rest, ok := scanLiteral("user2.dat", "user")
	assert.True(t, ok)
	assert.Equal(t, "2.dat", rest)

	rest, ok = scanLiteral("save2.dat", "user")
	assert.False(t, ok)
	assert.Equal(t, "save2.dat", rest)
}

func TestScanDigits(t *testing.T) {
	digits, rest := scanDigits("28891.dat")
	assert.Equal(t, "28891", digits)
	assert.Equal(t, ".dat", rest)

	digits, rest = scanDigits("x1")
	assert.Empty(t, digits)
	assert.Equal(t, "x1", rest)
}

func TestScanUntil(t *testing.T) {
	consumed, rest, ok := scanUntil("pin__user2.dat", "__")
	assert.True(t, ok)
	assert.Equal(t, "pin", consumed)
	assert.Equal(t, "__user2.dat", rest)

	_, rest, ok = scanUntil("noclose", "__")
	assert.False(t, ok)
	assert.Equal(t, "noclose", rest)
}
