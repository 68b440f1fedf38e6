package workflow

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/samzong/doxy/internal/browser"
	"github.com/samzong/doxy/internal/doxygen"
	"github.com/samzong/doxy/internal/emoji"
	"github.com/samzong/doxy/internal/project"
	"github.com/samzong/doxy/internal/ui"
)

// Sentinel errors for the failure categories the CLI distinguishes. The flow
// prints its own diagnostics before returning one of these, so callers only
// map them to exit codes.
var (
	ErrToolUnavailable  = errors.New("doxygen is not available")
	ErrDoxyfileMissing  = errors.New("doxyfile not found")
	ErrGenerationFailed = errors.New("documentation generation failed")
	ErrOutputMissing    = errors.New("generated documentation not found")
)

// InstallHint points users at the generator download page when the binary is
// missing.
const InstallHint = "Please install Doxygen from: https://www.doxygen.nl/download.html"

// AckMessage is the blocking prompt shown before the process exits.
const AckMessage = "Press Enter to exit..."

// BuildOptions configures a single build run.
type BuildOptions struct {
	// OpenBrowser allows the browser prompt after a successful build.
	OpenBrowser bool
	// AutoOpen is the default answer of the browser prompt.
	AutoOpen bool
	// Verbose streams generator output instead of showing a spinner.
	Verbose bool
	// GOOS selects the file URL rule; empty means runtime.GOOS.
	GOOS      string
	OutWriter io.Writer
	ErrWriter io.Writer
}

// BuildFlow runs the gate sequence: tool availability, configuration
// presence, generation, output verification, optional browser open. Each
// gate halts the whole run on failure; there are no retries.
type BuildFlow struct {
	layout   project.Layout
	gen      Generator
	opts     BuildOptions
	prompter Prompter
	opener   Opener
}

// NewBuildFlow creates a flow with an interactive prompter and the system
// browser opener. Tests swap both via SetPrompter/SetOpener.
func NewBuildFlow(layout project.Layout, gen Generator, opts BuildOptions) *BuildFlow {
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}

	return &BuildFlow{
		layout:   layout,
		gen:      gen,
		opts:     opts,
		prompter: &InteractivePrompter{Out: opts.ErrWriter},
		opener:   browser.Opener{},
	}
}

func (f *BuildFlow) SetPrompter(p Prompter) {
	f.prompter = p
}

func (f *BuildFlow) SetOpener(o Opener) {
	f.opener = o
}

// Acknowledge shows the blocking exit prompt. The command entry point calls
// this after Run regardless of outcome.
func (f *BuildFlow) Acknowledge() {
	f.prompter.Acknowledge(AckMessage)
}

// Run executes the build gates in order and returns a sentinel error for the
// first gate that fails.
func (f *BuildFlow) Run() error {
	out := f.opts.OutWriter
	errw := f.opts.ErrWriter

	fmt.Fprintln(out, emoji.Prefix(emoji.Launch, "Generating documentation..."))
	fmt.Fprintln(out, emoji.Prefix(emoji.Folder, "Project root: "+f.layout.Root))

	if _, err := f.gen.Version(); err != nil {
		fmt.Fprintln(errw, emoji.Prefix(emoji.Error, "ERROR: Doxygen not found!"))
		fmt.Fprintln(errw, InstallHint)
		f.prompter.Acknowledge(AckMessage)
		return ErrToolUnavailable
	}

	if !f.layout.HasDoxyfile() {
		fmt.Fprintln(errw, emoji.Prefix(emoji.Error, "ERROR: "+f.layout.Doxyfile+" not found in project root!"))
		fmt.Fprintln(errw, "Expected at: "+f.layout.DoxyfilePath())
		f.prompter.Acknowledge(AckMessage)
		return ErrDoxyfileMissing
	}

	fmt.Fprintln(out, emoji.Prefix(emoji.Memo, "Running Doxygen..."))
	res, genErr := f.generate()
	if genErr != nil {
		fmt.Fprintln(errw, emoji.Prefix(emoji.Error, "ERROR: Documentation generation failed!"))
		if stderrText := res.StderrString(true); stderrText != "" {
			fmt.Fprintln(errw, "Errors:", stderrText)
		}
		f.prompter.Acknowledge(AckMessage)
		return ErrGenerationFailed
	}

	index := f.layout.HTMLIndexPath()
	fmt.Fprintln(out, emoji.Prefix(emoji.Search, "Looking for documentation at: "+index))

	if !f.layout.HasIndex() {
		fmt.Fprintln(errw, emoji.Prefix(emoji.Error, "ERROR: "+f.layout.IndexFile+" not found at expected location!"))
		fmt.Fprintln(errw, "Expected: "+index)
		f.describeDocsDir(errw)
		return ErrOutputMissing
	}

	fmt.Fprintln(out, emoji.Prefix(emoji.Success, "SUCCESS: Documentation generated at "+index))

	if !f.opts.OpenBrowser {
		return nil
	}

	yes, err := f.prompter.Confirm("\nOpen in browser now? (Y/n): ", f.opts.AutoOpen)
	if err != nil {
		return err
	}
	if !yes {
		return nil
	}

	url := browser.FileURL(index, f.opts.GOOS)
	fmt.Fprintln(out, emoji.Prefix(emoji.Book, "Opening documentation in browser..."))
	if openErr := f.opener.Open(url); openErr != nil {
		// A missing browser must not fail a successful build.
		fmt.Fprintln(errw, "Warning:", openErr)
	}
	return nil
}

func (f *BuildFlow) generate() (doxygen.Result, error) {
	if f.opts.Verbose {
		return f.gen.Generate(f.layout.DoxyfilePath())
	}

	sp := ui.NewSpinner("Running Doxygen...")
	sp.Start()
	defer sp.Stop()
	return f.gen.Generate(f.layout.DoxyfilePath())
}

// describeDocsDir prints a one-level listing of the documentation directory
// so users can see what the generator actually produced.
func (f *BuildFlow) describeDocsDir(errw io.Writer) {
	fmt.Fprintln(errw, "")
	fmt.Fprintln(errw, emoji.Prefix(emoji.Search, "Checking project structure..."))

	lines, err := project.DescribeDocsDir(f.layout.DocsDir())
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(errw, f.layout.OutputDir+"/ directory not found!")
		return
	}
	if err != nil {
		fmt.Fprintln(errw, "Could not inspect "+f.layout.DocsDir()+":", err)
		return
	}

	fmt.Fprintln(errw, "Contents of "+f.layout.OutputDir+"/ directory:")
	for _, line := range lines {
		fmt.Fprintln(errw, line)
	}
}
