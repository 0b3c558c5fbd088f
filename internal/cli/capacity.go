package cli

import (
	"fmt"

	"github.com/alshadows/rsfec/internal/validation"
	"github.com/alshadows/rsfec/pkg/fec/rs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewCapacityCommand creates the capacity command
func NewCapacityCommand() *cobra.Command {
	var (
		parity     int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show correction capacity for a parity symbol count",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateParity(parity); err != nil {
				return err
			}

			maxErrors := rs.MaxErrors(parity)
			maxErasures := rs.MaxErasures(parity)
			maxMessage := rs.MaxCodewordLen - parity

			if jsonOutput {
				return printJSON(map[string]interface{}{
					"parity":       parity,
					"max_errors":   maxErrors,
					"max_erasures": maxErasures,
					"max_message":  maxMessage,
				})
			}

			cyan := color.New(color.FgCyan, color.Bold)
			fmt.Println()
			cyan.Printf("Capacity with %d parity symbols\n", parity)
			fmt.Println()
			fmt.Printf("  Max message length:        %d bytes\n", maxMessage)
			fmt.Printf("  Errors (unknown position): %d\n", maxErrors)
			fmt.Printf("  Erasures (declared):       %d\n", maxErasures)
			fmt.Println()
			fmt.Printf("Mixed damage is correctable while 2*errors + erasures <= %d.\n", parity)

			return nil
		},
	}

	cmd.Flags().IntVarP(&parity, "parity", "p", 8, "Number of parity symbols")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")

	return cmd
}
