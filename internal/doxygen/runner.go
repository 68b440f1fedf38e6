// Package doxygen executes the external documentation generator as a
// subprocess and captures its output.
package doxygen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is the generator binary looked up on PATH when no explicit
// binary is configured.
const DefaultBinary = "doxygen"

// Runner executes generator commands with shared logging and output handling.
type Runner struct {
	Binary  string
	Dir     string
	Verbose bool
	Logger  io.Writer
}

// Result contains captured stdout/stderr for a generator invocation.
type Result struct {
	Stdout []byte
	Stderr []byte
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Runner) withDefaults() Runner {
	if r.Binary == "" {
		r.Binary = DefaultBinary
	}
	if r.Logger == nil {
		r.Logger = os.Stderr
	}
	return r
}

func (r Runner) command(args ...string) *exec.Cmd {
	cmd := exec.Command(r.Binary, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	return cmd
}

func (r Runner) log(args []string) {
	if !r.Verbose {
		return
	}
	fmt.Fprintf(r.Logger, "Running: %s %s\n", r.Binary, strings.Join(args, " "))
}

// Run executes the generator and captures stdout/stderr. The subprocess runs
// to completion; no timeout is applied.
func (r Runner) Run(args ...string) (Result, error) {
	r = r.withDefaults()
	r.log(args)

	cmd := r.command(args...)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	return Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}, err
}

// RunTee executes the generator, streaming output to the provided writers
// while also capturing it. Nil writers disable streaming for that stream.
func (r Runner) RunTee(stdout, stderr io.Writer, args ...string) (Result, error) {
	r = r.withDefaults()
	r.log(args)

	cmd := r.command(args...)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer

	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	if stdout != nil {
		cmd.Stdout = io.MultiWriter(&outBuf, stdout)
	}
	if stderr != nil {
		cmd.Stderr = io.MultiWriter(&errBuf, stderr)
	}

	err := cmd.Run()
	return Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}, err
}
