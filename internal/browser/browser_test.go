package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileURL(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		goos     string
		expected string
	}{
		{
			name:     "windows path gets triple slash and forward slashes",
			path:     `C:\project\docs\html\index.html`,
			goos:     "windows",
			expected: "file:///C:/project/docs/html/index.html",
		},
		{
			name:     "linux path keeps native separators",
			path:     "/home/dev/project/docs/html/index.html",
			goos:     "linux",
			expected: "file:///home/dev/project/docs/html/index.html",
		},
		{
			name:     "darwin treated like linux",
			path:     "/Users/dev/project/docs/html/index.html",
			goos:     "darwin",
			expected: "file:///Users/dev/project/docs/html/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileURL(tt.path, tt.goos))
		})
	}
}

func TestOpenerCustomLauncher(t *testing.T) {
	// Record the launched URL through a shell launcher instead of a real
	// browser.
	out := filepath.Join(t.TempDir(), "opened.txt")
	o := Opener{Launcher: []string{"sh", "-c", `printf '%s' "$0" > ` + out}}

	err := o.Open("file:///tmp/index.html")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/index.html", string(data))
}

func TestOpenerLauncherFailure(t *testing.T) {
	o := Opener{Launcher: []string{"false"}}

	err := o.Open("file:///tmp/index.html")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file:///tmp/index.html")
}

func TestLauncherPerOS(t *testing.T) {
	assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler"}, launcher("windows"))
	assert.Equal(t, []string{"open"}, launcher("darwin"))
	assert.Equal(t, []string{"xdg-open"}, launcher("linux"))
	assert.Equal(t, []string{"xdg-open"}, launcher("freebsd"))
}
