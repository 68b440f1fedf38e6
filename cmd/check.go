package cmd

import (
	"errors"
	"fmt"

	"github.com/samzong/doxy/internal/config"
	"github.com/samzong/doxy/internal/doxygen"
	"github.com/samzong/doxy/internal/emoji"
	"github.com/samzong/doxy/internal/ui"
	"github.com/samzong/doxy/internal/workflow"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the documentation build environment",
	Long: `Check that the generator binary, the Doxyfile, and the output location
are in place, without building anything.

Examples:
  doxy check
  doxy check --root ~/src/memforge`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck() error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}

	cfg := config.GetConfig()
	out := outWriter()
	failed := false

	fmt.Fprintln(out, ui.Divider())

	gen := doxygen.NewClient(doxygen.Options{Binary: cfg.Binary, ErrWriter: errWriter()})
	if version, err := gen.Version(); err != nil {
		failed = true
		fmt.Fprintln(out, emoji.Prefix(emoji.Error, cfg.Binary+": not found"))
		fmt.Fprintln(out, workflow.InstallHint)
	} else {
		fmt.Fprintln(out, emoji.Prefix(emoji.Success, cfg.Binary+" "+version))
	}

	layout, err := resolveLayout(cfg)
	if err != nil {
		failed = true
		fmt.Fprintln(out, emoji.Prefix(emoji.Error, err.Error()))
	} else {
		if layout.HasDoxyfile() {
			fmt.Fprintln(out, emoji.Prefix(emoji.Success, layout.DoxyfilePath()))
		} else {
			failed = true
			fmt.Fprintln(out, emoji.Prefix(emoji.Error, layout.DoxyfilePath()+": missing"))
		}

		if layout.HasIndex() {
			fmt.Fprintln(out, emoji.Prefix(emoji.Success, "existing output: "+layout.HTMLIndexPath()))
		} else {
			fmt.Fprintln(out, emoji.Prefix(emoji.Search,
				"no generated output yet (expected at "+layout.HTMLIndexPath()+")"))
		}
	}

	fmt.Fprintln(out, ui.Divider())

	if failed {
		return errors.New("environment check failed")
	}
	fmt.Fprintln(out, "Environment OK")
	return nil
}
