package rs

// generatorPoly builds the monic generator polynomial of degree parity,
// the product of (x - alpha^i) for i in [0, parity). Every valid codeword
// is a polynomial multiple of it, which is what makes the syndrome check
// in the decoder work.
func generatorPoly(parity int) (poly, error) {
	if parity < 1 || parity > fieldOrder-1 {
		return nil, ErrInvalidParityLength
	}
	g := poly{1}
	for i := 0; i < parity; i++ {
		// In GF(256) subtraction is XOR, so (x - alpha^i) == (x + alpha^i).
		g = polyMul(g, poly{1, alphaPow(i)})
	}
	return g, nil
}
