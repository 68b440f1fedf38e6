package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samzong/doxy/internal/emoji"
)

// DescribeDocsDir produces a one-level listing of the documentation
// directory for diagnostics when the expected output file is missing.
// Directories are expanded one level deep; everything below that is omitted.
// It returns os.ErrNotExist when the directory itself is missing.
func DescribeDocsDir(docsDir string) ([]string, error) {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read %s: %w", docsDir, err)
	}

	sortEntries(entries)

	var lines []string
	for _, entry := range entries {
		if !entry.IsDir() {
			lines = append(lines, "  "+emoji.Prefix(emoji.Document, entry.Name()))
			continue
		}

		lines = append(lines, "  "+emoji.Prefix(emoji.Folder, entry.Name()+"/"))

		subEntries, subErr := os.ReadDir(filepath.Join(docsDir, entry.Name()))
		if subErr != nil {
			continue
		}
		sortEntries(subEntries)
		for _, sub := range subEntries {
			lines = append(lines, "    "+emoji.Prefix(emoji.Document, sub.Name()))
		}
	}
	return lines, nil
}

func sortEntries(entries []os.DirEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
}
