package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/matrixgen-dev/matrixgen/internal/log"
)

// Version is the current version of matrixgen.
var Version = "0.4.0"

var (
	verboseFlag bool
	quietFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "matrixgen",
	Short: "Generate CI build matrices for napi-rs native modules",
	Long: `matrixgen turns the napi.targets list of a package manifest into a
build matrix: one (host, target, build command) row per declared target,
validated against the table of supported platforms.

Inside GitHub Actions the matrix is published as step outputs; outside
it is printed so local runs stay inspectable.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verboseFlag {
			level = slog.LevelDebug
		}
		if quietFlag {
			level = slog.LevelError
		}
		log.SetDefault(log.NewText(os.Stderr, level))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitWithCode(ExitUsage)
	}
}
