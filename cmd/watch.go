package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/samzong/doxy/internal/config"
	"github.com/samzong/doxy/internal/emoji"
	"github.com/samzong/doxy/internal/watcher"
	"github.com/samzong/doxy/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Rebuild documentation when sources change",
		Long: `Watch the Doxyfile and the configured source directories, rebuilding the
documentation whenever they change. Prompts are suppressed; stop with Ctrl-C.

The watched source directories come from the watch_paths config key
(default: src, include), resolved relative to the project root.

Examples:
  doxy watch
  doxy watch --debounce 5s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context())
		},
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce,
		"Delay after the last change before rebuilding")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(ctx context.Context) error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}

	cfg := config.GetConfig()
	layout, err := resolveLayout(cfg)
	if err != nil {
		return err
	}

	rebuild := func() {
		flow := workflow.NewBuildFlow(layout, newGenerator(cfg, layout), workflow.BuildOptions{
			OpenBrowser: false,
			Verbose:     verbose,
			OutWriter:   outWriter(),
			ErrWriter:   errWriter(),
		})
		flow.SetPrompter(workflow.SilentPrompter{})
		// Diagnostics are already printed by the flow; watch mode keeps
		// going after failed builds.
		_ = flow.Run()
	}

	paths := []string{layout.DoxyfilePath()}
	for _, p := range cfg.WatchPaths {
		paths = append(paths, filepath.Join(layout.Root, p))
	}

	w, err := watcher.New(paths, watchDebounce, rebuild, errWriter())
	if err != nil {
		return err
	}

	fmt.Fprintln(outWriter(), emoji.Prefix(emoji.Eyes, "Watching for changes (Ctrl-C to stop)..."))
	rebuild()
	return w.Run(ctx)
}
