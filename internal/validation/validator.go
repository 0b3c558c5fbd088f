package validation

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/alshadows/rsfec/pkg/fec/rs"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}

	return nil
}

func ValidateCodewordHex(input string) error {
	if err := ValidateHex(input); err != nil {
		return fmt.Errorf("invalid codeword format: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("failed to decode codeword: %w", err)
	}

	if len(data) < 2 {
		return fmt.Errorf("codeword is too short")
	}
	if len(data) > rs.MaxCodewordLen {
		return fmt.Errorf("codeword exceeds %d symbols (got %d)", rs.MaxCodewordLen, len(data))
	}

	return nil
}

func ValidateParity(parity int) error {
	if parity < 1 || parity > rs.MaxCodewordLen-1 {
		return fmt.Errorf("parity must be between 1 and %d (got %d)", rs.MaxCodewordLen-1, parity)
	}

	return nil
}

func ValidateEncodeParams(messageLen, parity int) error {
	if err := ValidateParity(parity); err != nil {
		return err
	}

	if messageLen < 1 {
		return fmt.Errorf("message cannot be empty")
	}

	if messageLen+parity > rs.MaxCodewordLen {
		return fmt.Errorf("message of %d bytes with %d parity exceeds the %d-symbol limit",
			messageLen, parity, rs.MaxCodewordLen)
	}

	return nil
}

func ValidateDecodeParams(codewordLen, parity int) error {
	if err := ValidateParity(parity); err != nil {
		return err
	}

	if codewordLen <= parity {
		return fmt.Errorf("codeword of %d bytes leaves no message with %d parity", codewordLen, parity)
	}

	if codewordLen > rs.MaxCodewordLen {
		return fmt.Errorf("codeword exceeds %d symbols (got %d)", rs.MaxCodewordLen, codewordLen)
	}

	return nil
}

func ValidatePositions(positions []int, codewordLen int) error {
	seen := make(map[int]bool, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= codewordLen {
			return fmt.Errorf("position %d is outside the codeword (0-%d)", pos, codewordLen-1)
		}
		if seen[pos] {
			return fmt.Errorf("position %d listed more than once", pos)
		}
		seen[pos] = true
	}

	return nil
}

func ValidateErasures(erasures []int, codewordLen, parity int) error {
	if err := ValidatePositions(erasures, codewordLen); err != nil {
		return fmt.Errorf("invalid erasure list: %w", err)
	}

	if len(erasures) > rs.MaxErasures(parity) {
		return fmt.Errorf("%d erasures exceed the maximum of %d for %d parity symbols",
			len(erasures), rs.MaxErasures(parity), parity)
	}

	return nil
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
