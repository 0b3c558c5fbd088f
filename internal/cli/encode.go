package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/alshadows/rsfec/internal/validation"
	"github.com/alshadows/rsfec/pkg/config"
	"github.com/alshadows/rsfec/pkg/fec/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewEncodeCommand creates the encode command
func NewEncodeCommand() *cobra.Command {
	var (
		message    string
		messageHex string
		inputFile  string
		parity     int
		outputFile string
		jsonOutput bool
		hidden     bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a message into a Reed-Solomon codeword",
		Long: `Encode a message into a Reed-Solomon codeword by appending parity
symbols. With p parity symbols the codeword survives up to p/2 corrupted
bytes at unknown positions, or up to p at declared positions.

Examples:
  # Encode a text message with 8 parity bytes
  rsfec encode --message "hello world" --parity 8

  # Encode hex input
  rsfec encode --hex 48656c6c6f --parity 4

  # Encode a file and save the codeword
  rsfec encode --input payload.bin --output payload.rs

  # Read the message interactively without echoing it
  rsfec encode --hidden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("parity") {
				parity = config.DefaultParity()
			}

			data, err := readInput(message, messageHex, inputFile, hidden)
			if err != nil {
				return err
			}

			if err := validation.ValidateEncodeParams(len(data), parity); err != nil {
				return err
			}

			codeword, err := rs.Encode(data, parity)
			if err != nil {
				return fmt.Errorf("encoding failed: %w", err)
			}

			if outputFile != "" {
				if err := writeOutputFile(outputFile, codeword); err != nil {
					return err
				}
			}

			if jsonOutput {
				return printJSON(map[string]interface{}{
					"codeword":     hex.EncodeToString(codeword),
					"data_length":  len(data),
					"parity":       parity,
					"max_errors":   rs.MaxErrors(parity),
					"max_erasures": rs.MaxErasures(parity),
				})
			}

			green := color.New(color.FgGreen, color.Bold)
			fmt.Println()
			green.Println("=== REED-SOLOMON CODEWORD ===")
			fmt.Println()
			displayCodeword(codeword, parity)
			fmt.Println()
			fmt.Printf("This codeword survives up to %d unknown errors or %d declared erasures.\n",
				rs.MaxErrors(parity), rs.MaxErasures(parity))

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text to encode")
	cmd.Flags().StringVar(&messageHex, "hex", "", "Message as a hex string")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the message from a file")
	cmd.Flags().IntVarP(&parity, "parity", "p", 8, "Number of parity symbols to append")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the codeword to a file")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Read the message without terminal echo")

	return cmd
}
