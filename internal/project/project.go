// Package project resolves the project root and the filesystem paths the
// build derives from it.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout describes where the build reads its configuration and expects its
// output, all relative to an absolute project root. The root is carried as a
// value; the process working directory is never changed.
type Layout struct {
	Root      string // absolute project root
	Doxyfile  string // configuration filename directly under Root
	OutputDir string // documentation subdirectory under Root
	HTMLDir   string // HTML subdirectory under OutputDir
	IndexFile string // file whose existence marks a successful build
}

// DoxyfilePath returns the absolute path of the generator configuration file.
func (l Layout) DoxyfilePath() string {
	return filepath.Join(l.Root, l.Doxyfile)
}

// DocsDir returns the absolute path of the documentation directory.
func (l Layout) DocsDir() string {
	return filepath.Join(l.Root, l.OutputDir)
}

// HTMLOutputDir returns the absolute path of the generated HTML directory.
func (l Layout) HTMLOutputDir() string {
	return filepath.Join(l.Root, l.OutputDir, l.HTMLDir)
}

// HTMLIndexPath returns the absolute path of the generated index file.
func (l Layout) HTMLIndexPath() string {
	return filepath.Join(l.Root, l.OutputDir, l.HTMLDir, l.IndexFile)
}

// HasDoxyfile reports whether the configuration file exists under the root.
func (l Layout) HasDoxyfile() bool {
	info, err := os.Stat(l.DoxyfilePath())
	return err == nil && !info.IsDir()
}

// HasIndex reports whether the generated index file exists.
func (l Layout) HasIndex() bool {
	info, err := os.Stat(l.HTMLIndexPath())
	return err == nil && !info.IsDir()
}

// FindRoot walks upward from start until it finds a directory that contains
// the named configuration file, and returns that directory as an absolute
// path. It fails when the filesystem root is reached without a match.
func FindRoot(start, doxyfile string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, doxyfile)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory", doxyfile, start)
		}
		dir = parent
	}
}

// Resolve builds a Layout. An explicit root wins; otherwise the root is
// discovered by walking upward from the current working directory.
func Resolve(explicitRoot, doxyfile, outputDir, htmlDir, indexFile string) (Layout, error) {
	layout := Layout{
		Doxyfile:  doxyfile,
		OutputDir: outputDir,
		HTMLDir:   htmlDir,
		IndexFile: indexFile,
	}

	if explicitRoot != "" {
		root, err := filepath.Abs(explicitRoot)
		if err != nil {
			return Layout{}, fmt.Errorf("failed to resolve project root: %w", err)
		}
		layout.Root = root
		return layout, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Layout{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	root, err := FindRoot(cwd, doxyfile)
	if err != nil {
		return Layout{}, err
	}
	layout.Root = root
	return layout, nil
}
