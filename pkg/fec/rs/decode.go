package rs

import "fmt"

// Decode corrects errors and erasures in received and returns a corrected
// copy together with the corrected positions in ascending order. The
// caller's buffer is never mutated, and no partially corrected result is
// ever returned: on any failure the output is nil and the error wraps one
// of the sentinel kinds in errors.go.
//
// erasures lists positions whose values are known to be unreliable. Each
// erasure consumes one parity symbol, an error at an unknown position
// consumes two. When the declared erasures turn out to be intact and the
// codeword is otherwise clean, Decode returns it unchanged with no
// corrected positions.
func (c *Codec) Decode(received []byte, erasures []int) ([]byte, []int, error) {
	n := len(received)
	if n > MaxCodewordLen {
		return nil, nil, fmt.Errorf("codeword of %d symbols: %w", n, ErrMessageTooLong)
	}
	if n <= c.parity {
		return nil, nil, fmt.Errorf("codeword of %d symbols leaves no message with %d parity: %w",
			n, c.parity, ErrInvalidParityLength)
	}
	if err := checkErasures(erasures, n); err != nil {
		return nil, nil, err
	}
	if len(erasures) > c.parity {
		return nil, nil, fmt.Errorf("%d erasures exceed %d parity symbols: %w",
			len(erasures), c.parity, ErrUncorrectable)
	}

	// Stage 1: syndromes. All zero means the codeword is already a valid
	// multiple of the generator; any declared erasures were false alarms.
	synd := c.syndromes(received)
	if allZero(synd) {
		out := make([]byte, n)
		copy(out, received)
		return out, []int{}, nil
	}

	// Stage 2: error locator, with the declared erasures seeded as known
	// roots so Berlekamp-Massey only has to discover the unknown positions.
	eraseLoc := errataLocator(erasures, n)
	locator, err := c.errorLocator(synd, eraseLoc, len(erasures))
	if err != nil {
		return nil, nil, err
	}

	// Stage 3: Chien search for the errata positions.
	positions, err := chienSearch(locator, n)
	if err != nil {
		return nil, nil, err
	}

	// Stage 4: Forney magnitudes, applied to a fresh copy.
	corrected, err := c.correctErrata(received, synd, positions)
	if err != nil {
		return nil, nil, err
	}

	// A clean decode must leave no residual syndromes. Anything left means
	// the errata exceeded capacity in a way the earlier checks cannot see.
	if !allZero(c.syndromes(corrected)) {
		return nil, nil, fmt.Errorf("residual syndromes after correction: %w", ErrUncorrectable)
	}

	return corrected, sortedPositions(positions), nil
}

// syndromes evaluates the received polynomial at each generator root.
func (c *Codec) syndromes(codeword []byte) []byte {
	synd := make([]byte, c.parity)
	for i := range synd {
		synd[i] = polyEval(poly(codeword), alphaPow(i))
	}
	return synd
}

// errataLocator builds the locator polynomial whose roots mark the given
// codeword positions: the product of (alpha^d * x + 1) over the coefficient
// degree d = n-1-pos of each position.
func errataLocator(positions []int, n int) poly {
	loc := poly{1}
	for _, pos := range positions {
		loc = polyMul(loc, poly{alphaPow(n - 1 - pos), 1})
	}
	return loc
}

// errorLocator runs the Berlekamp-Massey recurrence over the syndromes to
// extend the erasure locator with the unknown error positions. The final
// locator degree is checked against the joint capacity bound
// 2*errors + erasures <= parity.
func (c *Codec) errorLocator(synd []byte, eraseLoc poly, eraseCount int) (poly, error) {
	errLoc := poly{1}
	oldLoc := poly{1}
	if eraseCount > 0 {
		errLoc = append(poly{}, eraseLoc...)
		oldLoc = append(poly{}, eraseLoc...)
	}

	for i := 0; i < c.parity-eraseCount; i++ {
		k := i + eraseCount

		// Discrepancy between the next syndrome and what the current
		// locator predicts from the previous ones.
		delta := synd[k]
		for j := 1; j < len(errLoc) && j <= k; j++ {
			delta ^= gfMul(errLoc[len(errLoc)-1-j], synd[k-j])
		}

		oldLoc = append(oldLoc, 0)
		if delta != 0 {
			if len(oldLoc) > len(errLoc) {
				newLoc := polyScale(oldLoc, delta)
				inv, err := gfInv(delta)
				if err != nil {
					return nil, fmt.Errorf("scaling locator: %w", err)
				}
				oldLoc = polyScale(errLoc, inv)
				errLoc = newLoc
			}
			errLoc = polyAdd(errLoc, polyScale(oldLoc, delta))
		}
	}

	errLoc = polyTrim(errLoc)
	errata := len(errLoc) - 1
	if (errata-eraseCount)*2+eraseCount > c.parity {
		return nil, fmt.Errorf("locator degree %d with %d erasures exceeds %d parity symbols: %w",
			errata, eraseCount, c.parity, ErrUncorrectable)
	}
	return errLoc, nil
}

// chienSearch finds the errata positions by evaluating the reciprocal of
// the locator at alpha^i for every candidate position. The number of roots
// must match the locator degree exactly, otherwise the error positions are
// not uniquely determined.
func chienSearch(locator poly, n int) ([]int, error) {
	errata := len(locator) - 1
	recip := polyReverse(locator)

	positions := make([]int, 0, errata)
	for i := 0; i < n; i++ {
		if polyEval(recip, alphaPow(i)) == 0 {
			positions = append(positions, n-1-i)
		}
	}
	if len(positions) != errata {
		return nil, fmt.Errorf("locator of degree %d has %d roots in the codeword: %w",
			errata, len(positions), ErrUncorrectable)
	}
	return positions, nil
}

// correctErrata computes the error magnitude at each located position with
// the Forney algorithm and XORs it into a copy of the received codeword.
func (c *Codec) correctErrata(received, synd []byte, positions []int) ([]byte, error) {
	n := len(received)
	locator := errataLocator(positions, n)

	// Error evaluator: x*S(x)*Lambda(x) truncated to the locator length.
	spoly := make(poly, len(synd)+1)
	for i, s := range synd {
		spoly[len(synd)-1-i] = s
	}
	evaluator := polyMul(spoly, locator)
	if len(evaluator) > len(locator) {
		evaluator = evaluator[len(evaluator)-len(locator):]
	}

	out := make([]byte, n)
	copy(out, received)
	for i, pos := range positions {
		xi := alphaPow(n - 1 - pos)
		xiInv, err := gfInv(xi)
		if err != nil {
			return nil, fmt.Errorf("inverting root: %w", err)
		}

		// Denominator is the locator's formal derivative at the root,
		// expressed as the product over the remaining roots.
		denom := byte(1)
		for j, other := range positions {
			if j == i {
				continue
			}
			denom = gfMul(denom, 1^gfMul(xiInv, alphaPow(n-1-other)))
		}
		if denom == 0 {
			return nil, fmt.Errorf("error magnitude undefined at position %d: %w", pos, ErrUncorrectable)
		}

		magnitude, err := gfDiv(gfMul(xi, polyEval(evaluator, xiInv)), denom)
		if err != nil {
			return nil, fmt.Errorf("computing magnitude at position %d: %w", pos, err)
		}
		out[pos] ^= magnitude
	}
	return out, nil
}

// checkErasures rejects out-of-range and duplicate erasure positions.
func checkErasures(erasures []int, n int) error {
	seen := make(map[int]bool, len(erasures))
	for _, pos := range erasures {
		if pos < 0 || pos >= n {
			return fmt.Errorf("erasure position %d outside codeword of %d symbols: %w",
				pos, n, ErrInvalidErasure)
		}
		if seen[pos] {
			return fmt.Errorf("erasure position %d declared twice: %w", pos, ErrInvalidErasure)
		}
		seen[pos] = true
	}
	return nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
