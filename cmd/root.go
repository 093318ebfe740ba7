package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "walkgfa",
		Short:        "Convert founder and haplotype walks between compact walk notation and GFA",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newDecodeCommand(ctx))
	rootCmd.AddCommand(newExpandCommand(ctx))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
