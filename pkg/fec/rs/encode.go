package rs

import "fmt"

// Encode appends parity symbols to message and returns the codeword of
// length len(message) + ParityCount(). The message is never mutated.
//
// The encoding is systematic: the message is shifted left by the parity
// count and the remainder of dividing it by the generator polynomial
// becomes the parity. The resulting codeword, read as a polynomial,
// evaluates to zero at every generator root.
func (c *Codec) Encode(message []byte) ([]byte, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}
	if len(message)+c.parity > MaxCodewordLen {
		return nil, fmt.Errorf("message of %d symbols with %d parity: %w",
			len(message), c.parity, ErrMessageTooLong)
	}

	shifted := make(poly, len(message)+c.parity)
	copy(shifted, message)
	_, remainder, err := polyDiv(shifted, c.gen)
	if err != nil {
		return nil, fmt.Errorf("computing parity: %w", err)
	}

	codeword := make([]byte, len(message)+c.parity)
	copy(codeword, message)
	copy(codeword[len(message):], remainder)
	return codeword, nil
}
