package catalog

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

type toolFile struct {
	Tools []Tool `toml:"tools"`
}

// LoadFromFS reads every TOML catalog file in dir of an embedded filesystem
// and returns the raw entries in file order. Duplicates are not resolved
// here; LoadAll dedups after overlays are applied.
func LoadFromFS(fsys embed.FS, dir string) ([]Tool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}

	var allTools []Tool
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fsys.ReadFile(dir + "/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		var tf toolFile
		if err := toml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		allTools = append(allTools, tf.Tools...)
	}

	return allTools, nil
}
