package cli

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/alshadows/rsfec/internal/validation"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// readMessageInteractive reads a message from the terminal. With hidden set
// the input is not echoed, for messages that should not land in scrollback.
func readMessageInteractive(hidden bool) ([]byte, error) {
	fmt.Print("Enter message: ")

	if hidden && term.IsTerminal(int(syscall.Stdin)) {
		message, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return nil, err
		}
		if len(message) == 0 {
			return nil, fmt.Errorf("message cannot be empty")
		}
		return message, nil
	}

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}

	message := []byte(strings.TrimSpace(input))
	if len(message) == 0 {
		return nil, fmt.Errorf("message cannot be empty")
	}

	return message, nil
}

// readInput resolves the message/codeword bytes from the text, hex, and
// file flags, falling back to an interactive prompt when all are empty.
func readInput(text, hexInput, inputFile string, hidden bool) ([]byte, error) {
	switch {
	case text != "":
		return []byte(text), nil
	case hexInput != "":
		cleaned := strings.TrimSpace(hexInput)
		if err := validation.ValidateHex(cleaned); err != nil {
			return nil, err
		}
		data, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", inputFile, err)
		}
		return data, nil
	default:
		return readMessageInteractive(hidden)
	}
}

// parsePositions parses a comma-separated list of codeword positions.
func parsePositions(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	parts := strings.Split(spec, ",")
	positions := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		pos, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid position '%s': %w", part, err)
		}
		positions = append(positions, pos)
	}

	return positions, nil
}

// groupedHex formats bytes as hex with a space every group bytes.
func groupedHex(data []byte, group int) string {
	if group <= 0 {
		return hex.EncodeToString(data)
	}

	var b strings.Builder
	for i, v := range data {
		if i > 0 && i%group == 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", v)
	}
	return b.String()
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeOutputFile saves data with restrictive permissions.
func writeOutputFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	green := color.New(color.FgGreen)
	green.Printf("Written to %s\n", path)
	return nil
}

// displayCodeword prints the data and parity regions of a codeword.
func displayCodeword(codeword []byte, parity int) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	k := len(codeword) - parity
	fmt.Printf("Codeword (%d bytes = %d data + %d parity):\n", len(codeword), k, parity)
	cyan.Printf("  Data:   %s\n", groupedHex(codeword[:k], 4))
	yellow.Printf("  Parity: %s\n", groupedHex(codeword[k:], 4))
}
