// Package workflow provides the documentation build orchestration logic.
package workflow

import "github.com/samzong/doxy/internal/doxygen"

// Generator abstracts the external documentation tool for testability.
type Generator interface {
	Version() (string, error)
	Generate(doxyfilePath string) (doxygen.Result, error)
}

// Prompter abstracts interactive confirmation prompts.
type Prompter interface {
	// Confirm asks a yes/no question. Empty input selects def; "y"/"yes"
	// (case-insensitive) select yes; anything else selects no.
	Confirm(question string, def bool) (bool, error)
	// Acknowledge blocks until the user presses Enter, keeping diagnostics
	// visible in terminals that close on exit.
	Acknowledge(message string)
}

// Opener abstracts launching a URL with the system browser.
type Opener interface {
	Open(url string) error
}
