package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b poly
		sum  poly
	}{
		{"equal length", poly{1, 3, 2}, poly{1, 3, 2}, poly{0, 0, 0}},
		{"short second operand pads high side", poly{1, 3, 2}, poly{5}, poly{1, 3, 7}},
		{"short first operand pads high side", poly{5}, poly{1, 3, 2}, poly{1, 3, 7}},
		{"empty operand", poly{1, 2}, poly{}, poly{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, polyAdd(tt.a, tt.b))
		})
	}
}

func TestPolyMul(t *testing.T) {
	// (x^2 + 3x + 2)(x + 6) over GF(256).
	assert.Equal(t, poly{1, 5, 8, 12}, polyMul(poly{1, 3, 2}, poly{1, 6}))

	// Multiplying by the constant 1 is the identity.
	assert.Equal(t, poly{7, 8, 9}, polyMul(poly{7, 8, 9}, poly{1}))

	// Result length is len(a)+len(b)-1.
	assert.Len(t, polyMul(poly{1, 2, 3}, poly{4, 5}), 4)
}

func TestPolyScale(t *testing.T) {
	assert.Equal(t, poly{4, 12, 8}, polyScale(poly{1, 3, 2}, 4))
	assert.Equal(t, poly{0, 0, 0}, polyScale(poly{1, 3, 2}, 0))
}

func TestPolyEval(t *testing.T) {
	// (x+1)(x+2) vanishes at both roots.
	p := poly{1, 3, 2}
	assert.Equal(t, byte(0), polyEval(p, 1))
	assert.Equal(t, byte(0), polyEval(p, 2))
	assert.NotEqual(t, byte(0), polyEval(p, 4))

	assert.Equal(t, byte(9), polyEval(poly{9}, 123), "constant polynomial")
	assert.Equal(t, byte(0), polyEval(poly{}, 5), "empty polynomial")
}

func TestPolyDiv(t *testing.T) {
	dividend := poly{18, 52, 86, 120, 0, 0}
	divisor := poly{1, 3, 2}

	q, r, err := polyDiv(dividend, divisor)
	require.NoError(t, err)
	assert.Equal(t, poly{18, 2, 116, 224}, q)
	assert.Equal(t, poly{213, 221}, r)

	// quotient*divisor + remainder recomposes the dividend.
	assert.Equal(t, dividend, polyAdd(polyMul(q, divisor), r))
}

func TestPolyDivShortDividend(t *testing.T) {
	q, r, err := polyDiv(poly{7}, poly{1, 3, 2})
	require.NoError(t, err)
	assert.Empty(t, q)
	assert.Equal(t, poly{0, 7}, r)
}

func TestPolyDivByZero(t *testing.T) {
	_, _, err := polyDiv(poly{1, 2, 3}, poly{})
	assert.ErrorIs(t, err, ErrDivisionByZeroPolynomial)

	_, _, err = polyDiv(poly{1, 2, 3}, poly{0, 4})
	assert.ErrorIs(t, err, ErrDivisionByZeroPolynomial, "zero leading coefficient")
}

func TestPolyTrim(t *testing.T) {
	assert.Equal(t, poly{1, 2}, polyTrim(poly{0, 0, 1, 2}))
	assert.Equal(t, poly{0}, polyTrim(poly{0, 0, 0}), "zero polynomial keeps one coefficient")
	assert.Equal(t, poly{5}, polyTrim(poly{5}))
}

func TestPolyReverse(t *testing.T) {
	assert.Equal(t, poly{2, 3, 1}, polyReverse(poly{1, 3, 2}))

	// Roots of the reciprocal are inverses of the original roots:
	// (x+1)(x+2) has roots 1 and 2, the reciprocal has roots 1 and inv(2).
	recip := polyReverse(poly{1, 3, 2})
	inv2, err := gfInv(2)
	require.NoError(t, err)
	assert.Equal(t, byte(0), polyEval(recip, 1))
	assert.Equal(t, byte(0), polyEval(recip, inv2))
}

func TestOperandsNotMutated(t *testing.T) {
	a := poly{1, 3, 2}
	b := poly{1, 6}
	polyMul(a, b)
	polyAdd(a, b)
	polyScale(a, 9)
	_, _, err := polyDiv(a, b)
	require.NoError(t, err)

	assert.Equal(t, poly{1, 3, 2}, a)
	assert.Equal(t, poly{1, 6}, b)
}
