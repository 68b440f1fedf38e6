package cmd

import (
	"fmt"
	"os"

	"github.com/samzong/doxy/internal/config"
	"github.com/samzong/doxy/internal/emoji"
	"github.com/spf13/cobra"
)

var (
	cleanDryRun bool

	cleanCmd = &cobra.Command{
		Use:   "clean",
		Short: "Remove generated documentation output",
		Long: `Remove the generated HTML output directory under the project root.

Only the HTML output is removed; the Doxyfile and any other content of the
documentation directory are untouched.

Examples:
  doxy clean             # Remove <root>/docs/html
  doxy clean --dry-run   # Preview what would be removed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean()
		},
	}
)

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Preview what would be removed without making changes")
	rootCmd.AddCommand(cleanCmd)
}

func runClean() error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}

	cfg := config.GetConfig()
	layout, err := resolveLayout(cfg)
	if err != nil {
		return err
	}

	out := outWriter()
	target := layout.HTMLOutputDir()

	if _, statErr := os.Stat(target); os.IsNotExist(statErr) {
		fmt.Fprintln(out, "Nothing to clean:", target)
		return nil
	}

	if cleanDryRun {
		fmt.Fprintln(out, "Would remove:", target)
		return nil
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("failed to remove %s: %w", target, err)
	}
	fmt.Fprintln(out, emoji.Prefix(emoji.Broom, "Removed "+target))
	return nil
}
