package cli

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/alshadows/rsfec/internal/validation"
	"github.com/alshadows/rsfec/pkg/config"
	"github.com/alshadows/rsfec/pkg/fec/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewDecodeCommand creates the decode command
func NewDecodeCommand() *cobra.Command {
	var (
		codewordHex string
		inputFile   string
		parity      int
		erasureSpec string
		outputFile  string
		jsonOutput  bool
		showText    bool
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a Reed-Solomon codeword, correcting errors and erasures",
		Long: `Decode a possibly corrupted Reed-Solomon codeword back into the
original message. Positions known to be damaged can be declared as
erasures, which doubles the correction capacity for those positions.

Examples:
  # Decode a hex codeword with 8 parity bytes
  rsfec decode --hex 48656c... --parity 8

  # Declare positions 0,1,2,3 as erasures
  rsfec decode --hex 48656c... --parity 8 --erasures 0,1,2,3

  # Decode a codeword file and save the recovered message
  rsfec decode --input payload.rs --output payload.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("parity") {
				parity = config.DefaultParity()
			}

			if codewordHex == "" && inputFile == "" {
				return fmt.Errorf("provide the codeword with --hex or --input")
			}

			received, err := readInput("", codewordHex, inputFile, false)
			if err != nil {
				return err
			}

			if err := validation.ValidateDecodeParams(len(received), parity); err != nil {
				return err
			}

			erasures, err := parsePositions(erasureSpec)
			if err != nil {
				return err
			}
			if err := validation.ValidateErasures(erasures, len(received), parity); err != nil {
				return err
			}

			corrected, fixed, err := rs.Decode(received, parity, erasures)
			if err != nil {
				if errors.Is(err, rs.ErrUncorrectable) {
					red := color.New(color.FgRed, color.Bold)
					red.Println("Decoding failed: too many errors for the available parity.")
					fmt.Println("More parity symbols, or declaring known-bad positions as")
					fmt.Println("erasures, would be required to recover this codeword.")
				}
				return fmt.Errorf("decoding failed: %w", err)
			}

			message := corrected[:len(corrected)-parity]
			if outputFile != "" {
				if err := writeOutputFile(outputFile, message); err != nil {
					return err
				}
			}

			if jsonOutput {
				return printJSON(map[string]interface{}{
					"message":             hex.EncodeToString(message),
					"corrected_positions": fixed,
					"corrections":         len(fixed),
				})
			}

			green := color.New(color.FgGreen, color.Bold)
			cyan := color.New(color.FgCyan)
			fmt.Println()
			green.Println("=== RECOVERED MESSAGE ===")
			fmt.Println()
			cyan.Printf("Hex:  %s\n", groupedHex(message, 4))
			if showText {
				fmt.Printf("Text: %q\n", string(message))
			}
			fmt.Println()
			if len(fixed) == 0 {
				fmt.Println("Codeword was intact; nothing to correct.")
			} else {
				fmt.Printf("Corrected %d position(s): %v\n", len(fixed), fixed)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&codewordHex, "hex", "", "Codeword as a hex string")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the codeword from a file")
	cmd.Flags().IntVarP(&parity, "parity", "p", 8, "Number of parity symbols in the codeword")
	cmd.Flags().StringVarP(&erasureSpec, "erasures", "e", "", "Comma-separated positions known to be damaged")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the recovered message to a file")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&showText, "text", "t", true, "Also print the message as text")

	return cmd
}
