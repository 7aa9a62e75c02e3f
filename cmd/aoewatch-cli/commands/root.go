package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath *string

var rootCmd = &cobra.Command{
	Use:   "aoewatch-cli",
	Short: "aoewatch-cli inspects and dry-runs the aoewatch pipeline.",
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "Path to the aoewatch config file.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
