// Package browser converts generated documentation paths into file:// URLs
// and opens them with the host's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// FileURL builds a file:// URL for an absolute filesystem path.
//
// Windows needs a triple slash and forward slashes
// ("file:///C:/project/docs/html/index.html"); every other OS family keeps
// the native path after a double slash. The OS is a parameter so the rule is
// testable without running on each platform.
func FileURL(absPath, goos string) string {
	if goos == "windows" {
		return "file:///" + strings.ReplaceAll(absPath, `\`, "/")
	}
	return "file://" + absPath
}

// Opener launches URLs with the operating system's default handler.
type Opener struct {
	// Launcher overrides the platform launcher command, mainly for tests.
	Launcher []string
}

// Open hands the URL to the system handler and waits for the launcher
// process to return. The launcher exits once the browser has been told to
// open the URL, so this does not block on the browser itself.
func (o Opener) Open(url string) error {
	args := o.Launcher
	if len(args) == 0 {
		args = launcher(runtime.GOOS)
	}
	if len(args) == 0 {
		return fmt.Errorf("no browser launcher available on %s", runtime.GOOS)
	}

	cmd := exec.Command(args[0], append(args[1:], url)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

func launcher(goos string) []string {
	switch goos {
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	case "darwin":
		return []string{"open"}
	default:
		return []string{"xdg-open"}
	}
}
