package cmd

import (
	"fmt"

	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/gabrielgad/crab/internal/state"
	"github.com/gabrielgad/crab/internal/ui"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"ls"},
		Short:   "List catalog tools and what is already installed",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat := loadCatalog()

			tools := cat.All()
			if len(args) == 1 {
				tools = cat.Search(args[0])
			}
			if len(tools) == 0 {
				if len(args) == 1 {
					fmt.Printf("  No tools match %q.\n", args[0])
				} else {
					fmt.Println("  The catalog is empty.")
				}
				return
			}

			ui.Banner("tool catalog")

			detected := catalog.Detect(tools)
			managed := state.Load()

			headers := []string{"Tool", "Version", "Crate", "Status"}
			var rows [][]string
			installed := 0

			for _, dt := range detected {
				ver := dt.Version
				status := "-"
				if dt.Installed {
					installed++
					if ver == "" {
						ver = "?"
					}
					status = ui.StatusIcon(true) + " installed"
					if _, ok := managed.Installed[dt.Tool.Name]; ok {
						status += " (crab)"
					}
				} else {
					ver = "-"
				}

				rows = append(rows, []string{
					dt.Tool.Name,
					ver,
					dt.Tool.CrateName(),
					status,
				})
			}

			ui.Table(headers, rows)

			fmt.Println()
			fmt.Printf("  %d/%d tools installed\n", installed, len(detected))
		},
	}
}
