package cmd

import (
	"context"
	"fmt"

	"github.com/samzong/doxy/internal/config"
	"github.com/samzong/doxy/internal/doxygen"
	"github.com/samzong/doxy/internal/project"
	"github.com/samzong/doxy/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	rootDir   string
	autoYes   bool
	noBrowser bool
	verbose   bool
	configErr error

	rootCmd = &cobra.Command{
		Use:   "doxy",
		Short: "doxy - Doxygen Build Helper",
		Long: `doxy is a CLI tool that builds Doxygen documentation for a project: it locates ` +
			`the project root, runs Doxygen against its Doxyfile, verifies the generated ` +
			`HTML output, and can open it in your browser.`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return runBuild()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	execCtx = context.Background()
)

// SetContext stores the context commands run under, typically carrying
// signal cancellation from main.
func SetContext(ctx context.Context) {
	execCtx = ctx
}

// RootCmd exposes the root command for the documentation generator in
// cmd/gendoc.
func RootCmd() *cobra.Command {
	return rootCmd
}

func Execute() error {
	return rootCmd.ExecuteContext(execCtx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $HOME/.doxy.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "",
		"Project root (default: nearest directory containing the Doxyfile, searching upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"Show detailed generator output")
	rootCmd.Flags().BoolVarP(&autoYes, "yes", "y", false,
		"Run non-interactively, answering yes to all prompts")
	rootCmd.Flags().BoolVar(&noBrowser, "no-browser", false,
		"Never open the generated documentation in a browser")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func resolveLayout(cfg *config.Config) (project.Layout, error) {
	return project.Resolve(rootDir, cfg.Doxyfile, cfg.OutputDir, cfg.HTMLDir, cfg.IndexFile)
}

func newGenerator(cfg *config.Config, layout project.Layout) *doxygen.Client {
	return doxygen.NewClient(doxygen.Options{
		Binary:    cfg.Binary,
		Dir:       layout.Root,
		Verbose:   verbose,
		OutWriter: outWriter(),
		ErrWriter: errWriter(),
	})
}

func runBuild() error {
	cfg := config.GetConfig()

	layout, err := resolveLayout(cfg)
	if err != nil {
		return err
	}

	flow := workflow.NewBuildFlow(layout, newGenerator(cfg, layout), workflow.BuildOptions{
		OpenBrowser: !noBrowser,
		AutoOpen:    cfg.AutoOpen,
		Verbose:     verbose,
		OutWriter:   outWriter(),
		ErrWriter:   errWriter(),
	})
	flow.SetPrompter(&workflow.InteractivePrompter{Out: errWriter(), AutoYes: autoYes})

	runErr := flow.Run()
	// Exit gate runs regardless of outcome so interactive users see the
	// result before their terminal closes.
	flow.Acknowledge()
	return runErr
}
