package strings

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short description unchanged", "Get the current Raft leader", 60, "Get the current Raft leader"},
		{"exact length unchanged", "get-kv", 6, "get-kv"},
		{"long description truncated", "Execute a KV transaction with multiple operations", 20, "Execute a KV tran..."},
		{"newlines joined", "List keys\nin the KV store", 40, "List keys in the KV store"},
		{"carriage returns joined", "List keys\r\nin the KV store", 40, "List keys in the KV store"},
		{"tabs and runs of spaces collapsed", "Register\t\ta   service", 40, "Register a service"},
		{"surrounding whitespace trimmed", "  Get peers  ", 40, "Get peers"},
		{"unicode preserved", "Zurück zum Knoten", 40, "Zurück zum Knoten"},
		{"unicode cut on rune boundary", "日本語のサービス一覧", 6, "日本語..."},
		{"empty string", "", 10, ""},
		{"whitespace only", "  \n\t ", 10, ""},
		{"maxLen below minimum clamped", "consul", 2, "c..."},
		{"zero maxLen clamped", "consul", 0, "c..."},
		{"negative maxLen clamped", "consul", -5, "c..."},
		{"maxLen at minimum", "consul", 4, "c..."},
		{"short string with small maxLen unchanged", "dc", 3, "dc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateDescription(tt.input, tt.maxLen))
		})
	}
}

func TestTruncateDescription_RuneLength(t *testing.T) {
	result := TruncateDescription("日本語テスト", 5)

	assert.Equal(t, "日本...", result)
	assert.Equal(t, 5, utf8.RuneCountInString(result))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "web", OrDefault("web", "Unknown"))
	assert.Equal(t, "Unknown", OrDefault("", "Unknown"))
}

func TestJoinOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		sep      string
		expected string
	}{
		{"nil slice", nil, ",", "None"},
		{"empty slice", []string{}, ",", "None"},
		{"single empty item", []string{""}, ",", "None"},
		{"one item", []string{"v1"}, ", ", "v1"},
		{"several items", []string{"v1", "canary"}, ", ", "v1, canary"},
		{"compact separator", []string{"v1", "canary"}, ",", "v1,canary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinOrDefault(tt.items, tt.sep, "None"))
		})
	}
}
