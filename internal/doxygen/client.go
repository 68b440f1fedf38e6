package doxygen

import (
	"fmt"
	"io"
	"strings"
)

// Client exposes the two generator operations the build flow needs:
// a version query (availability probe) and a generation run.
type Client struct {
	runner    Runner
	outWriter io.Writer
	errWriter io.Writer
}

// Options configures a Client.
type Options struct {
	// Binary is the generator binary name or path. Empty means DefaultBinary.
	Binary string
	// Dir is the working directory for generation runs, normally the project
	// root. Relative paths inside the Doxyfile resolve against it.
	Dir string
	// Verbose logs invoked commands and streams generator output.
	Verbose bool
	// OutWriter/ErrWriter receive streamed output in verbose mode and
	// command logs. Both default to os.Stderr via the Runner.
	OutWriter io.Writer
	ErrWriter io.Writer
}

// NewClient creates a generator client.
func NewClient(opts Options) *Client {
	return &Client{
		runner: Runner{
			Binary:  opts.Binary,
			Dir:     opts.Dir,
			Verbose: opts.Verbose,
			Logger:  opts.ErrWriter,
		},
		outWriter: opts.OutWriter,
		errWriter: opts.ErrWriter,
	}
}

// Version queries the generator with its version flag. Any failure, whether
// the binary is missing from PATH or it exits non-zero, reports the tool as
// unavailable.
func (c *Client) Version() (string, error) {
	res, err := c.runner.Run("--version")
	if err != nil {
		return "", fmt.Errorf("%s unavailable: %w", c.runner.withDefaults().Binary, err)
	}

	version := res.StdoutString(true)
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	return version, nil
}

// Generate runs the generator with the configuration file as its sole
// argument. The returned Result carries captured output even when the run
// fails, so callers can surface the generator's own error text.
func (c *Client) Generate(doxyfilePath string) (Result, error) {
	if c.runner.Verbose {
		return c.runner.RunTee(c.outWriter, c.errWriter, doxyfilePath)
	}
	return c.runner.Run(doxyfilePath)
}
