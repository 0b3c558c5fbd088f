package rs

// GF(256) field arithmetic using log/antilog tables built from the primitive
// polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with generator alpha = 2,
// the standard choice for byte-oriented Reed-Solomon codes.

const (
	// Primitive polynomial: x^8 + x^4 + x^3 + x^2 + 1
	primitivePoly = 0x11D

	// fieldOrder is the order of the multiplicative group of GF(256).
	fieldOrder = 255
)

// exp and log tables for efficient multiplication/division in GF(256).
// gfExp is doubled so that the sum of two logs can index it directly
// without a modular reduction.
var (
	gfExp [512]byte
	gfLog [256]byte
)

func init() {
	// Walk the powers of the generator. Each nonzero field element must be
	// visited exactly once before the walk returns to 1; anything else means
	// the generator/polynomial pair is not primitive.
	var seen [256]bool
	x := 1
	for i := 0; i < fieldOrder; i++ {
		if seen[x] {
			panic("rs: generator does not have full period in GF(256)")
		}
		seen[x] = true
		gfExp[i] = byte(x)
		gfLog[x] = byte(i)

		// Multiply by alpha = 2 and reduce.
		x <<= 1
		if x&0x100 != 0 {
			x ^= primitivePoly
		}
	}
	if x != 1 {
		panic("rs: generator walk did not close its cycle in GF(256)")
	}
	for i := fieldOrder; i < len(gfExp); i++ {
		gfExp[i] = gfExp[i-fieldOrder]
	}
	// log(0) is undefined; gfLog[0] stays at the zero sentinel and every
	// operation below checks for zero operands before consulting it.
}

// gfAdd performs addition in GF(256), which is XOR. Subtraction is identical.
func gfAdd(a, b byte) byte {
	return a ^ b
}

// gfMul performs multiplication in GF(256) using the log/antilog tables.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}

// gfInv returns the multiplicative inverse of a in GF(256).
func gfInv(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return gfExp[fieldOrder-int(gfLog[a])], nil
}

// gfDiv performs division in GF(256).
func gfDiv(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	return gfExp[(int(gfLog[a])+fieldOrder-int(gfLog[b]))%fieldOrder], nil
}

// gfPow raises a to the power n in GF(256). Negative exponents are reduced
// modulo the group order, so gfPow(a, -1) is the inverse of a nonzero a.
func gfPow(a byte, n int) byte {
	if a == 0 {
		return 0
	}
	e := (int(gfLog[a]) * n) % fieldOrder
	if e < 0 {
		e += fieldOrder
	}
	return gfExp[e]
}

// alphaPow returns alpha^e for any integer exponent.
func alphaPow(e int) byte {
	e %= fieldOrder
	if e < 0 {
		e += fieldOrder
	}
	return gfExp[e]
}
