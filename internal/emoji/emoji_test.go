package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	t.Setenv(DisableEnv, "")

	assert.Equal(t, "🚀", For(Launch))
	assert.Equal(t, "✅", For(Success))
	assert.Equal(t, "❌", For(Error))
	assert.Equal(t, "", For(Status("unknown")))
}

func TestForDisabled(t *testing.T) {
	t.Setenv(DisableEnv, "1")

	assert.Equal(t, "", For(Launch))
	assert.False(t, Enabled())
}

func TestPrefix(t *testing.T) {
	t.Setenv(DisableEnv, "")

	assert.Equal(t, "✅ done", Prefix(Success, "done"))
	assert.Equal(t, "done", Prefix(Status("unknown"), "done"))
}

func TestPrefixDisabled(t *testing.T) {
	t.Setenv(DisableEnv, "yes")

	assert.Equal(t, "done", Prefix(Success, "done"))
}

func TestAllStatuses(t *testing.T) {
	statuses := AllStatuses()

	assert.Len(t, statuses, len(emojiMap))
	assert.Contains(t, statuses, Launch)
	assert.Contains(t, statuses, Error)

	for i := 1; i < len(statuses); i++ {
		assert.Less(t, statuses[i-1], statuses[i])
	}
}

func TestStrip(t *testing.T) {
	t.Setenv(DisableEnv, "")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "prefixed with space", input: "🚀 Generating...", expected: "Generating..."},
		{name: "prefixed without space", input: "❌ERROR", expected: "ERROR"},
		{name: "no emoji", input: "plain message", expected: "plain message"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}
