package rs

import "errors"

var (
	// ErrInvalidParityLength is returned when the parity symbol count is
	// outside [1, 254], or leaves no room for message symbols.
	ErrInvalidParityLength = errors.New("parity length must leave room for at least one message symbol in a 255-symbol codeword")

	// ErrMessageTooLong is returned when message plus parity exceeds the
	// 255-symbol limit of GF(256).
	ErrMessageTooLong = errors.New("message and parity exceed 255 symbols")

	// ErrEmptyMessage is returned when there are no message symbols to encode.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrInvalidErasure is returned when a declared erasure position is
	// outside the received codeword, or declared more than once.
	ErrInvalidErasure = errors.New("invalid erasure position")

	// ErrDivisionByZero reports a division or inversion by the zero element
	// of GF(256). With validated inputs it indicates an internal invariant
	// violation rather than a caller mistake.
	ErrDivisionByZero = errors.New("division by zero in GF(256)")

	// ErrDivisionByZeroPolynomial reports polynomial division by the zero
	// polynomial or one with a zero leading coefficient.
	ErrDivisionByZeroPolynomial = errors.New("polynomial division by zero polynomial")

	// ErrUncorrectable is returned when the received codeword holds more
	// errors and erasures than the parity symbols can resolve.
	ErrUncorrectable = errors.New("too many errors to correct")
)
