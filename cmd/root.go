package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"qrtransfer/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "qrtransfer",
	Short: "Build Polish bank-transfer QR code payloads",
	Long: `qrtransfer assembles the fixed-grammar text record that Polish banking
apps read from a domestic-transfer QR code. It validates every field and
prints the finished record; turning the record into a QR image is left to
downstream tooling.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.Level(cfg.LogLevel),
		}))
		slog.SetDefault(logger)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
