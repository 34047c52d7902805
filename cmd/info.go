package cmd

import (
	"fmt"
	"os"

	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/gabrielgad/crab/internal/state"
	"github.com/gabrielgad/crab/internal/ui"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "info <tool>",
		Short:             "Show detailed info about a tool",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: toolCompletionFunc,
		Run: func(cmd *cobra.Command, args []string) {
			cat := loadCatalog()
			name := args[0]

			tool := cat.Get(name)
			if tool == nil {
				ui.Warn.Printf("crab: unknown tool %q\n", name)
				fmt.Println("  Run `crab list` to see the catalog")
				os.Exit(1)
			}

			ui.Banner("tool info")

			dt := catalog.DetectOne(*tool)

			fmt.Printf("  %s\n", ui.Brand.Sprint(tool.Name))
			fmt.Printf("  %s\n\n", tool.Description)

			fmt.Printf("  Crate:     %s\n", tool.CrateName())
			fmt.Printf("  Command:   %s\n", tool.CommandName())
			if tool.Homepage != "" {
				fmt.Printf("  Homepage:  %s\n", tool.Homepage)
			}

			fmt.Println()
			if dt.Installed {
				ver := dt.Version
				if ver == "" {
					ver = "unknown"
				}
				fmt.Printf("  Status:    %s installed (%s)\n", ui.StatusIcon(true), ver)
				if dt.Path != "" {
					fmt.Printf("  Path:      %s\n", dt.Path)
				}
				if state.IsManaged(tool.Name) {
					fmt.Printf("  Managed:   installed by crab\n")
				}
			} else {
				fmt.Printf("  Status:    not installed\n")
				fmt.Printf("  Install:   crab (interactive) or crab --all\n")
			}

			if tool.Tip != "" {
				fmt.Printf("\n  Try:       %s\n", tool.Tip)
			}
		},
	}
}
