package catalog

import (
	"os/exec"
	"strings"

	"github.com/gabrielgad/crab/internal/parallel"
)

// DetectedTool holds detection results for a single tool.
type DetectedTool struct {
	Tool      Tool
	Installed bool
	Version   string
	Path      string
}

// detectWorkers bounds the detection fan-out; each probe execs a binary.
const detectWorkers = 8

// Detect probes the given tools concurrently.
// Results come back in the order the tools were given.
func Detect(tools []Tool) []DetectedTool {
	return parallel.Map(tools, detectWorkers, DetectOne)
}

// DetectInstalled returns only catalog tools found on PATH, in catalog order.
func DetectInstalled(c *Catalog) []DetectedTool {
	var results []DetectedTool
	for _, dt := range Detect(c.All()) {
		if dt.Installed {
			results = append(results, dt)
		}
	}
	return results
}

// DetectOne checks whether a single tool's command is on PATH and,
// if so, asks it for a version.
func DetectOne(tool Tool) DetectedTool {
	dt := DetectedTool{Tool: tool}

	path, err := exec.LookPath(tool.CommandName())
	if err != nil {
		return dt
	}
	dt.Installed = true
	dt.Path = path

	// Version is best effort; presence on PATH already counts as installed.
	out, err := exec.Command(path, "--version").Output()
	if err == nil {
		dt.Version = ExtractVersion(strings.TrimSpace(string(out)))
	}
	return dt
}

// ExtractVersion tries to pull a version number from command output.
func ExtractVersion(output string) string {
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Look for a field that looks like a version number
		fields := strings.Fields(line)
		for _, f := range fields {
			if len(f) > 0 && f[0] >= '0' && f[0] <= '9' {
				return f
			}
			// Handle "v2.0.0", "ripgrep-14.1.0" and similar embedded versions
			if len(f) > 1 && containsVersion(f) {
				return f
			}
		}
		// Fallback: return last field
		if len(fields) == 1 {
			return fields[0]
		}
		return fields[len(fields)-1]
	}
	return output
}

// containsVersion checks if a string contains a version-like pattern (e.g., "v1.19.0").
func containsVersion(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] >= '0' && s[i] <= '9' && (i+1 < len(s) && s[i+1] == '.') {
			return true
		}
	}
	return false
}
