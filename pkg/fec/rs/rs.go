// Package rs implements Reed-Solomon forward error correction over GF(256).
//
// Encoding is systematic: the codeword is the message followed by parity
// symbols, so the message can be read straight out of an error-free
// codeword. Decoding corrects both errors (position and value unknown) and
// erasures (position declared by the caller, value unknown). With p parity
// symbols the code corrects any combination satisfying
//
//	2*errors + erasures <= p
//
// All arithmetic runs over GF(256) with the primitive polynomial 0x11D, the
// convention used by QR codes, CDs, and the reedsolo family of codecs. The
// log/antilog tables are built once at package initialization and are
// read-only afterwards, so encode and decode calls are safe to run
// concurrently on independent buffers.
package rs

import (
	"fmt"
	"sort"
)

// MaxCodewordLen is the symbol-count ceiling of GF(256): message plus
// parity can never exceed it.
const MaxCodewordLen = 255

// Codec encodes and decodes codewords with a fixed parity symbol count.
// It validates the parity count and builds the generator polynomial once,
// so it is cheaper than the package-level functions when many messages
// share one configuration. A Codec is immutable and safe for concurrent
// use.
type Codec struct {
	parity int
	gen    poly
}

// NewCodec returns a codec producing parity extra symbols per codeword.
func NewCodec(parity int) (*Codec, error) {
	gen, err := generatorPoly(parity)
	if err != nil {
		return nil, fmt.Errorf("invalid parity count %d: %w", parity, err)
	}
	return &Codec{parity: parity, gen: gen}, nil
}

// ParityCount returns the number of parity symbols appended per codeword.
func (c *Codec) ParityCount() int {
	return c.parity
}

// MaxErrors returns the number of errors at unknown positions that parity
// symbols can correct.
func MaxErrors(parity int) int {
	return parity / 2
}

// MaxErasures returns the number of erasures at declared positions that
// parity symbols can correct.
func MaxErasures(parity int) int {
	return parity
}

// Encode appends parity symbols to message and returns the codeword.
func Encode(message []byte, parity int) ([]byte, error) {
	c, err := NewCodec(parity)
	if err != nil {
		return nil, err
	}
	return c.Encode(message)
}

// Decode corrects received in a fresh copy and returns it together with the
// corrected positions. See Codec.Decode.
func Decode(received []byte, parity int, erasures []int) ([]byte, []int, error) {
	c, err := NewCodec(parity)
	if err != nil {
		return nil, nil, err
	}
	return c.Decode(received, erasures)
}

// sortedPositions returns the errata positions in ascending index order.
func sortedPositions(positions []int) []int {
	out := make([]int, len(positions))
	copy(out, positions)
	sort.Ints(out)
	return out
}
