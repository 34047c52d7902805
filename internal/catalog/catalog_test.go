package catalog

import (
	"testing"
)

func sampleTools() []Tool {
	return []Tool{
		{
			Name:        "bat",
			Crate:       "bat",
			Command:     "bat",
			Description: "cat clone with syntax highlighting",
			Tip:         "bat README.md",
			Homepage:    "https://github.com/sharkdp/bat",
		},
		{
			Name:        "ripgrep",
			Crate:       "ripgrep",
			Command:     "rg",
			Description: "recursively search directories with regex",
			Tip:         "rg TODO",
			Homepage:    "https://github.com/BurntSushi/ripgrep",
		},
		{
			Name:        "fd",
			Crate:       "fd-find",
			Command:     "fd",
			Description: "simple, fast alternative to find",
		},
		{
			Name:        "zellij",
			Description: "terminal workspace and multiplexer",
		},
	}
}

func TestNew(t *testing.T) {
	cat := New(sampleTools())
	if cat == nil {
		t.Fatal("New returned nil")
	}
	if cat.Len() != 4 {
		t.Errorf("expected 4 tools, got %d", cat.Len())
	}
}

func TestGet(t *testing.T) {
	cat := New(sampleTools())

	tool := cat.Get("ripgrep")
	if tool == nil {
		t.Fatal("Get(ripgrep) returned nil")
	}
	if tool.Command != "rg" {
		t.Errorf("expected command 'rg', got %q", tool.Command)
	}

	if cat.Get("nonexistent") != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestNamesPreservesOrder(t *testing.T) {
	cat := New(sampleTools())

	names := cat.Names()
	expected := []string{"bat", "ripgrep", "fd", "zellij"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d names, got %d", len(expected), len(names))
	}
	for i, want := range expected {
		if names[i] != want {
			t.Errorf("names[%d]: expected %q, got %q", i, want, names[i])
		}
	}
}

func TestSearch(t *testing.T) {
	cat := New(sampleTools())

	tests := []struct {
		query    string
		expected int
	}{
		{"bat", 1},      // name match
		{"rg", 1},       // command match
		{"fd-find", 1},  // crate match
		{"terminal", 1}, // description match
		{"search", 1},   // description match
		{"nothing", 0},  // no match
	}

	for _, tt := range tests {
		results := cat.Search(tt.query)
		if len(results) != tt.expected {
			t.Errorf("Search(%q): expected %d results, got %d", tt.query, tt.expected, len(results))
		}
	}
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		name     string
		tool     Tool
		expected string
	}{
		{"explicit command", Tool{Name: "ripgrep", Command: "rg"}, "rg"},
		{"defaults to name", Tool{Name: "zellij"}, "zellij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tool.CommandName(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCrateName(t *testing.T) {
	tests := []struct {
		name     string
		tool     Tool
		expected string
	}{
		{"explicit crate", Tool{Name: "fd", Crate: "fd-find"}, "fd-find"},
		{"defaults to name", Tool{Name: "zellij"}, "zellij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tool.CrateName(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
