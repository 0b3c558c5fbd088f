package rs

// Polynomials over GF(256) are coefficient slices ordered highest degree
// first, so a codeword can be treated as a polynomial directly. All
// operations allocate fresh results and never mutate their operands.

type poly []byte

// polyAdd adds two polynomials coefficient-wise, padding the shorter one
// with zeros on the high-degree side.
func polyAdd(a, b poly) poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(poly, n)
	for i, c := range a {
		out[i+n-len(a)] = c
	}
	for i, c := range b {
		out[i+n-len(b)] ^= c
	}
	return out
}

// polyMul multiplies two polynomials by full convolution.
func polyMul(a, b poly) poly {
	if len(a) == 0 || len(b) == 0 {
		return poly{}
	}
	out := make(poly, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j] ^= gfMul(ca, cb)
		}
	}
	return out
}

// polyScale multiplies every coefficient by the field element c.
func polyScale(a poly, c byte) poly {
	out := make(poly, len(a))
	for i, v := range a {
		out[i] = gfMul(v, c)
	}
	return out
}

// polyEval evaluates the polynomial at the field point x by Horner's method.
func polyEval(a poly, x byte) byte {
	if len(a) == 0 {
		return 0
	}
	y := a[0]
	for _, c := range a[1:] {
		y = gfMul(y, x) ^ c
	}
	return y
}

// polyDiv divides a by b using synthetic division, returning quotient and
// remainder. The remainder always has len(b)-1 coefficients.
func polyDiv(a, b poly) (quotient, remainder poly, err error) {
	if len(b) == 0 || b[0] == 0 {
		return nil, nil, ErrDivisionByZeroPolynomial
	}
	if len(a) < len(b) {
		remainder = make(poly, len(b)-1)
		copy(remainder[len(remainder)-len(a):], a)
		return poly{}, remainder, nil
	}

	out := make(poly, len(a))
	copy(out, a)
	for i := 0; i <= len(a)-len(b); i++ {
		c, derr := gfDiv(out[i], b[0])
		if derr != nil {
			return nil, nil, derr
		}
		out[i] = c
		if c == 0 {
			continue
		}
		for j := 1; j < len(b); j++ {
			out[i+j] ^= gfMul(b[j], c)
		}
	}

	sep := len(a) - (len(b) - 1)
	return out[:sep], out[sep:], nil
}

// polyTrim strips leading zero coefficients so that the leading coefficient
// of a nonzero polynomial is nonzero. The zero polynomial trims to a single
// zero coefficient.
func polyTrim(a poly) poly {
	i := 0
	for i < len(a)-1 && a[i] == 0 {
		i++
	}
	return a[i:]
}

// polyReverse returns the reciprocal coefficient order; the roots of the
// result are the inverses of the roots of a.
func polyReverse(a poly) poly {
	out := make(poly, len(a))
	for i, c := range a {
		out[len(a)-1-i] = c
	}
	return out
}
