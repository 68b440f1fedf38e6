package emoji

import (
	"os"
	"sort"
	"strings"
)

// Status identifies a category of user-facing status message.
type Status string

const (
	Launch   Status = "launch"   // build starting
	Folder   Status = "folder"   // path/directory information
	Memo     Status = "memo"     // generator running
	Search   Status = "search"   // looking for output
	Success  Status = "success"  // build succeeded
	Error    Status = "error"    // failure
	Book     Status = "book"     // opening documentation
	Document Status = "document" // plain file entry in listings
	Broom    Status = "broom"    // cleanup
	Eyes     Status = "eyes"     // watch mode
)

// emojiMap maps status categories to their corresponding emojis
var emojiMap = map[Status]string{
	Launch:   "🚀",
	Folder:   "📁",
	Memo:     "📝",
	Search:   "🔍",
	Success:  "✅",
	Error:    "❌",
	Book:     "📖",
	Document: "📄",
	Broom:    "🧹",
	Eyes:     "👀",
}

// DisableEnv turns off emoji output when set to any non-empty value,
// for terminals and logs that do not render them.
const DisableEnv = "DOXY_NO_EMOJI"

// Enabled reports whether emoji decoration is active.
func Enabled() bool {
	return os.Getenv(DisableEnv) == ""
}

// For returns the emoji for a status category, or empty string when the
// category is unknown or decoration is disabled.
func For(s Status) string {
	if !Enabled() {
		return ""
	}
	return emojiMap[s]
}

// Prefix prepends the status emoji to a message. With decoration disabled
// the message is returned unchanged.
func Prefix(s Status, message string) string {
	e := For(s)
	if e == "" {
		return message
	}
	return e + " " + message
}

// AllStatuses returns the supported status categories in alphabetical order.
func AllStatuses() []Status {
	statuses := make([]Status, 0, len(emojiMap))
	for s := range emojiMap {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}

// Strip removes a leading status emoji (and the space after it) from a
// message, if present. Useful when re-emitting decorated output to plain
// sinks.
func Strip(message string) string {
	for _, e := range emojiMap {
		if after, found := strings.CutPrefix(message, e+" "); found {
			return after
		}
		if after, found := strings.CutPrefix(message, e); found {
			return after
		}
	}
	return message
}
