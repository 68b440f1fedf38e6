package cmd

import (
	"fmt"
	"strings"

	"github.com/samzong/doxy/internal/config"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage doxy configuration",
		Long: `Manage doxy configuration, including the generator binary, the Doxyfile
name, and the expected output location.

Valid keys: ` + strings.Join(config.Keys(), ", "),
	}

	configGetCmd = &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			value, err := config.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(outWriter(), value)
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and persist it to the config file.

Examples:
  doxy config set binary /opt/doxygen/bin/doxygen
  doxy config set doxyfile Doxyfile.ci
  doxy config set auto_open false
  doxy config set watch_paths src,include,lib`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			if err := config.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.SaveConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(outWriter(), "Set %s to: %s\n", args[0], args[1])
			return nil
		},
	}

	configListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			for _, key := range config.Keys() {
				value, err := config.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(outWriter(), "%s: %s\n", key, value)
			}
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
