package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/spf13/cobra"
)

func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print shell exports that put installed tools on PATH",
		Long:  "Print export statements for eval — usage: eval $(crab env)",
		Run: func(cmd *cobra.Command, args []string) {
			cat := loadCatalog()

			fmt.Println("# crab env — eval $(crab env)")

			// Collect unique directories from installed tool paths
			detected := catalog.DetectInstalled(cat)
			seen := make(map[string]bool)
			var paths []string
			for _, dt := range detected {
				if dt.Path != "" {
					dir := filepath.Dir(dt.Path)
					if dir != "" && !seen[dir] {
						paths = append(paths, dir)
						seen[dir] = true
					}
				}
			}

			// cargo's install dir belongs on PATH even before the first install
			home, _ := os.UserHomeDir()
			if home != "" {
				dir := filepath.Join(home, ".cargo", "bin")
				if info, err := os.Stat(dir); err == nil && info.IsDir() && !seen[dir] {
					paths = append(paths, dir)
					seen[dir] = true
				}
			}

			if len(paths) > 0 {
				fmt.Printf("export PATH=\"%s:$PATH\"\n", strings.Join(paths, ":"))
			}

			fmt.Println("# end crab env")
		},
	}
}
