package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alshadows/rsfec/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "rsfec",
		Short: "Reed-Solomon forward error correction over GF(256)",
		Long: `rsfec encodes messages into Reed-Solomon codewords and recovers them
from corruption.

With p parity symbols appended, a codeword survives any combination of
damage satisfying 2*errors + erasures <= p, where an error is a corrupted
byte at an unknown position and an erasure is one whose position is known.

Features:
- Systematic encoding: the message is readable directly from the codeword
- Error correction at unknown positions (up to p/2 bytes)
- Erasure correction at declared positions (up to p bytes)
- Deliberate corruption helper for testing and demonstrations

Run 'rsfec example' for a guided walkthrough.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewEncodeCommand(),
		cli.NewDecodeCommand(),
		cli.NewCorruptCommand(),
		cli.NewCapacityCommand(),
		cli.NewExampleCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
