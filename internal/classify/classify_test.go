package classify

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		errText  string
		expected Category
	}{
		{
			"openssl via pkg-config",
			"error: failed to run custom build command for `openssl-sys`\nCould not find openssl via pkg-config",
			MissingOpenSSL,
		},
		{
			"pkg-config missing",
			"The pkg-config command could not be found.",
			MissingPkgConfig,
		},
		{
			"linker not found",
			"error: linker `cc` not found",
			MissingLinker,
		},
		{
			"permission denied",
			"error: failed to link or copy: permission denied (os error 13)",
			PermissionDenied,
		},
		{
			"network error",
			"warning: spurious network error (2 tries remaining)",
			NetworkError,
		},
		{
			"connection failed",
			"error: connection to crates.io failed",
			NetworkError,
		},
		{
			"disk full",
			"error: No space left? disk is full",
			DiskFull,
		},
		{
			"no space left",
			"write failed: no space left on device",
			DiskFull,
		},
		{
			"rustc missing",
			"error: rustc 1.75 or newer not found on PATH",
			CompilerNotFound,
		},
		{
			"cargo missing",
			"sh: cargo: command not found",
			PackageManagerNotFound,
		},
		{
			"compile failure",
			"error: failed to compile `zellij v0.40.1`",
			CompilationFailed,
		},
		{
			"download failure",
			"error: failed to download from https://crates.io/api/v1/crates",
			DownloadFailed,
		},
		{
			"unmatched noise",
			"random compiler noise",
			Unknown,
		},
		{
			"empty stderr",
			"",
			Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.errText); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.errText, got, tt.expected)
			}
		})
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// Both the openssl and network rules would match; the earlier rule decides.
	text := "Could not find openssl via pkg-config\nwarning: spurious network error"
	if got := Classify(text); got != MissingOpenSSL {
		t.Errorf("expected MissingOpenSSL to take priority, got %v", got)
	}

	// The specific pkg-config rule outranks the generic compile-failure rule.
	text = "pkg-config command could not be found\nerror: failed to compile `bat`"
	if got := Classify(text); got != MissingPkgConfig {
		t.Errorf("expected MissingPkgConfig to take priority, got %v", got)
	}
}

func TestClassifyPhrasesSpanLines(t *testing.T) {
	// The loose patterns tolerate anything between their anchor words,
	// including newlines from wrapped cargo output.
	text := "error: linker `cc`\n    not found\n    |\n    = note: please install gcc"
	if got := Classify(text); got != MissingLinker {
		t.Errorf("expected MissingLinker across lines, got %v", got)
	}

	text = "network\nrequest error while fetching"
	if got := Classify(text); got != NetworkError {
		t.Errorf("expected NetworkError across lines, got %v", got)
	}
}

func TestClassifyCaseSensitive(t *testing.T) {
	// Matching is case-sensitive; phrases in other casing are unrecognized.
	if got := Classify("Permission Denied"); got != Unknown {
		t.Errorf("capitalized text should not match, got %v", got)
	}
	if got := Classify("could not find openssl via pkg-config"); got != Unknown {
		t.Errorf("lowercased openssl phrase should not match, got %v", got)
	}
}

func TestCategoryStringTotal(t *testing.T) {
	categories := []Category{
		Unknown, MissingOpenSSL, MissingPkgConfig, MissingLinker,
		PermissionDenied, NetworkError, DiskFull, CompilerNotFound,
		PackageManagerNotFound, CompilationFailed, DownloadFailed,
	}
	for _, c := range categories {
		if c.String() == "" {
			t.Errorf("category %d has empty String()", int(c))
		}
		if c.Explanation() == "" {
			t.Errorf("category %d has empty Explanation()", int(c))
		}
	}
}

func TestRemedy(t *testing.T) {
	if r := MissingOpenSSL.Remedy(); !strings.Contains(r, "libssl-dev") {
		t.Errorf("openssl remedy should name libssl-dev, got %q", r)
	}
	if r := CompilerNotFound.Remedy(); !strings.Contains(r, "rustup.rs") {
		t.Errorf("compiler remedy should point at rustup, got %q", r)
	}
	if r := Unknown.Remedy(); r != "" {
		t.Errorf("unknown category should have no remedy, got %q", r)
	}
	if r := CompilationFailed.Remedy(); r != "" {
		t.Errorf("compilation failures have no canned remedy, got %q", r)
	}
}
