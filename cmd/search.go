package cmd

import (
	"fmt"

	"github.com/gabrielgad/crab/internal/ui"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"s", "find"},
		Short:   "Search or browse the tool catalog",
		Long: `Search the catalog by keyword, or browse everything.

  crab search          # Browse the full catalog
  crab search git      # Tools matching "git"`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cat := loadCatalog()

			tools := cat.All()
			title := "tool catalog"
			if len(args) == 1 {
				tools = cat.Search(args[0])
				title = fmt.Sprintf("search results for %q", args[0])
			}

			ui.Banner(title)

			if len(tools) == 0 {
				fmt.Println("  No tools match your query.")
				return
			}

			headers := []string{"Tool", "Crate", "Description"}
			var rows [][]string
			for _, t := range tools {
				desc := t.Description
				if len(desc) > 50 {
					desc = desc[:47] + "..."
				}
				rows = append(rows, []string{t.Name, t.CrateName(), desc})
			}

			ui.Table(headers, rows)

			fmt.Printf("\n  %d tools · `crab info <tool>` for details\n", len(tools))
		},
	}
}
