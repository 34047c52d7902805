package catalog

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gabrielgad/crab/internal/config"
)

// LoadAll merges the embedded catalog with user overlay files from
// ~/.config/crab/tools.d/. Overlay entries override built-ins by name while
// keeping the built-in's position in catalog order.
func LoadAll(fsys embed.FS, dir string) (*Catalog, error) {
	tools, err := LoadFromFS(fsys, dir)
	if err != nil {
		return nil, err
	}

	overlayDir := filepath.Join(config.Dir(), "tools.d")
	if entries, err := os.ReadDir(overlayDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(overlayDir, entry.Name()))
			if err != nil {
				continue
			}
			var tf toolFile
			if err := toml.Unmarshal(data, &tf); err != nil {
				// Malformed overlay files are skipped, not fatal
				continue
			}
			tools = append(tools, tf.Tools...)
		}
	}

	return New(dedup(tools)), nil
}

// dedup drops duplicate names, keeping the last occurrence's entry at the
// first occurrence's position (overlay overrides embedded in place).
func dedup(tools []Tool) []Tool {
	last := make(map[string]int, len(tools))
	for i, t := range tools {
		last[t.Name] = i
	}

	result := make([]Tool, 0, len(last))
	added := make(map[string]bool, len(last))
	for _, t := range tools {
		if added[t.Name] {
			continue
		}
		result = append(result, tools[last[t.Name]])
		added[t.Name] = true
	}
	return result
}
