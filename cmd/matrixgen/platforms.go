package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matrixgen-dev/matrixgen/internal/registry"
)

var platformsJSON bool

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported build targets",
	Long: `List every supported target triple with the CI host that builds it
and the extra build flags it requires.`,
	Args: cobra.NoArgs,
	Run:  runPlatforms,
}

func init() {
	platformsCmd.Flags().BoolVar(&platformsJSON, "json", false, "Output in JSON format")
}

func runPlatforms(cmd *cobra.Command, args []string) {
	all := registry.All()

	if platformsJSON {
		printJSON(all)
		return
	}

	fmt.Printf("Supported platforms (%d total):\n\n", len(all))
	fmt.Printf("  %-32s  %-15s  %s\n", "TARGET", "HOST", "EXTRA FLAGS")
	for _, p := range all {
		fmt.Printf("  %-32s  %-15s  %s\n", p.Target, p.Host, p.Flags)
	}
}
