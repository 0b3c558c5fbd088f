package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"sort"

	"github.com/alshadows/rsfec/internal/validation"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewCorruptCommand creates the corrupt command, a testing helper that
// damages codewords deliberately so decode runs can be exercised.
func NewCorruptCommand() *cobra.Command {
	var (
		codewordHex  string
		inputFile    string
		positionSpec string
		count        int
		mask         int
		outputFile   string
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "corrupt",
		Short: "Flip bytes in a codeword to simulate channel damage",
		Long: `Corrupt a codeword at chosen or random positions by XORing a mask
into each byte. Useful for demonstrating and testing error correction:
feed the output to 'rsfec decode', optionally declaring the reported
positions as erasures.

Examples:
  # Flip four specific bytes
  rsfec corrupt --hex 48656c... --positions 10,11,12,13

  # Flip three random bytes
  rsfec corrupt --hex 48656c... --count 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if codewordHex == "" && inputFile == "" {
				return fmt.Errorf("provide the codeword with --hex or --input")
			}

			codeword, err := readInput("", codewordHex, inputFile, false)
			if err != nil {
				return err
			}

			positions, err := parsePositions(positionSpec)
			if err != nil {
				return err
			}
			if len(positions) == 0 {
				if count <= 0 || count > len(codeword) {
					return fmt.Errorf("--count must be between 1 and %d", len(codeword))
				}
				positions, err = randomPositions(count, len(codeword))
				if err != nil {
					return err
				}
			}
			if err := validation.ValidatePositions(positions, len(codeword)); err != nil {
				return err
			}
			if mask < 1 || mask > 0xFF {
				return fmt.Errorf("--mask must be between 1 and 255 (got %d)", mask)
			}

			corrupted := make([]byte, len(codeword))
			copy(corrupted, codeword)
			for _, pos := range positions {
				corrupted[pos] ^= byte(mask)
			}

			if outputFile != "" {
				if err := writeOutputFile(outputFile, corrupted); err != nil {
					return err
				}
			}

			if jsonOutput {
				return printJSON(map[string]interface{}{
					"corrupted": hex.EncodeToString(corrupted),
					"positions": positions,
					"mask":      mask,
				})
			}

			red := color.New(color.FgRed, color.Bold)
			fmt.Println()
			red.Printf("Corrupted %d position(s): %v\n", len(positions), positions)
			fmt.Println()
			fmt.Printf("Damaged codeword: %s\n", groupedHex(corrupted, 4))
			fmt.Println()
			fmt.Println("Decode with erasures declared:")
			fmt.Printf("  rsfec decode --hex %s --erasures %s\n",
				hex.EncodeToString(corrupted), positionList(positions))

			return nil
		},
	}

	cmd.Flags().StringVar(&codewordHex, "hex", "", "Codeword as a hex string")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the codeword from a file")
	cmd.Flags().StringVar(&positionSpec, "positions", "", "Comma-separated positions to corrupt")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Corrupt this many random positions instead")
	cmd.Flags().IntVar(&mask, "mask", 0xFF, "XOR mask applied to each corrupted byte")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the damaged codeword to a file")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")

	return cmd
}

// randomPositions draws count distinct positions in [0, n).
func randomPositions(count, n int) ([]int, error) {
	chosen := make(map[int]bool, count)
	positions := make([]int, 0, count)
	for len(positions) < count {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return nil, fmt.Errorf("failed to draw random position: %w", err)
		}
		pos := int(v.Int64())
		if chosen[pos] {
			continue
		}
		chosen[pos] = true
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions, nil
}

func positionList(positions []int) string {
	out := ""
	for i, pos := range positions {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprint(pos)
	}
	return out
}
