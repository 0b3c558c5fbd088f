package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"valid lowercase", "48656c6c6f", false},
		{"valid uppercase", "48656C6C6F", false},
		{"surrounding whitespace", "  4865  ", false},
		{"empty", "", true},
		{"odd length", "486", true},
		{"invalid characters", "48zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHex(tt.input)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCodewordHex(t *testing.T) {
	assert.NoError(t, ValidateCodewordHex("48656c6c6f"))
	assert.Error(t, ValidateCodewordHex("48"), "too short")
	assert.Error(t, ValidateCodewordHex("zz"), "not hex")

	long := make([]byte, 256*2)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateCodewordHex(string(long)), "over 255 symbols")
}

func TestValidateParity(t *testing.T) {
	assert.NoError(t, ValidateParity(1))
	assert.NoError(t, ValidateParity(8))
	assert.NoError(t, ValidateParity(254))
	assert.Error(t, ValidateParity(0))
	assert.Error(t, ValidateParity(-4))
	assert.Error(t, ValidateParity(255))
}

func TestValidateEncodeParams(t *testing.T) {
	assert.NoError(t, ValidateEncodeParams(5, 4))
	assert.NoError(t, ValidateEncodeParams(247, 8))
	assert.Error(t, ValidateEncodeParams(0, 4), "empty message")
	assert.Error(t, ValidateEncodeParams(248, 8), "message too long")
	assert.Error(t, ValidateEncodeParams(5, 0), "invalid parity")
}

func TestValidateDecodeParams(t *testing.T) {
	assert.NoError(t, ValidateDecodeParams(9, 4))
	assert.Error(t, ValidateDecodeParams(4, 4), "no message region")
	assert.Error(t, ValidateDecodeParams(256, 8), "over field limit")
}

func TestValidateErasures(t *testing.T) {
	assert.NoError(t, ValidateErasures([]int{0, 3, 8}, 9, 4))
	assert.NoError(t, ValidateErasures(nil, 9, 4))
	assert.Error(t, ValidateErasures([]int{9}, 9, 4), "out of range")
	assert.Error(t, ValidateErasures([]int{-1}, 9, 4), "negative")
	assert.Error(t, ValidateErasures([]int{2, 2}, 9, 4), "duplicate")
	assert.Error(t, ValidateErasures([]int{0, 1, 2, 3, 4}, 9, 4), "more than parity")
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "abc", SanitizeInput("  abc  "))
	assert.Equal(t, "a\nb", SanitizeInput("a \r\n b"))
	assert.Equal(t, "a\nb", SanitizeInput("a\rb"))
}
