package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matrixgen-dev/matrixgen/internal/userconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage matrixgen configuration",
	Long: `Manage matrixgen configuration settings.

Configuration is stored in ~/.matrixgen/config.toml (override the
directory with MATRIXGEN_HOME).

Available settings:
  build_command  Base build command parametrized per target
  manifest       Default package manifest path

Examples:
  matrixgen config get build_command
  matrixgen config set build_command "pnpm build --release"`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		value, ok := cfg.Get(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown config key: %s\n", key)
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]

		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		if err := cfg.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		path, err := userconfig.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}
		if err := userconfig.Save(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		fmt.Printf("%s = %s\n", key, value)
	},
}

func loadConfig() (*userconfig.Config, error) {
	path, err := userconfig.Path()
	if err != nil {
		return nil, err
	}
	return userconfig.Load(path)
}

func printAvailableKeys() {
	keys := userconfig.AvailableKeys()
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	fmt.Fprintf(os.Stderr, "\nAvailable keys:\n")
	for _, k := range sorted {
		fmt.Fprintf(os.Stderr, "  %-14s %s\n", k, keys[k])
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
