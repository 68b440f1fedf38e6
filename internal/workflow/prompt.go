package workflow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// InteractivePrompter reads answers from a terminal. With AutoYes set every
// confirmation succeeds and the acknowledge gate is skipped, so -y runs are
// fully non-interactive. A non-terminal stdin behaves the same way with the
// question's default answer, so piped runs never block.
type InteractivePrompter struct {
	In      io.Reader
	Out     io.Writer
	AutoYes bool

	reader *bufio.Reader
}

func (p *InteractivePrompter) out() io.Writer {
	if p.Out == nil {
		return os.Stderr
	}
	return p.Out
}

func (p *InteractivePrompter) stdin() io.Reader {
	if p.In == nil {
		return os.Stdin
	}
	return p.In
}

// interactive reports whether the input can actually be prompted. Explicitly
// injected readers are always considered interactive so tests can script
// answers.
func (p *InteractivePrompter) interactive() bool {
	if p.AutoYes {
		return false
	}
	f, ok := p.stdin().(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *InteractivePrompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.stdin())
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return line, nil
}

// Confirm implements Prompter.
func (p *InteractivePrompter) Confirm(question string, def bool) (bool, error) {
	if p.AutoYes {
		return true, nil
	}
	if !p.interactive() {
		return def, nil
	}

	fmt.Fprint(p.out(), question)
	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Acknowledge implements Prompter.
func (p *InteractivePrompter) Acknowledge(message string) {
	if !p.interactive() {
		return
	}
	fmt.Fprint(p.out(), message)
	_, _ = p.readLine()
}

// SilentPrompter answers every confirmation with its default and never
// blocks. Watch mode and scripted callers use it.
type SilentPrompter struct{}

func (SilentPrompter) Confirm(_ string, def bool) (bool, error) { return def, nil }

func (SilentPrompter) Acknowledge(string) {}
