package cmd

import (
	"fmt"
	"os"

	"github.com/gabrielgad/crab/internal/installer"
	"github.com/gabrielgad/crab/internal/state"
	"github.com/gabrielgad/crab/internal/ui"
	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <tool>",
		Aliases:           []string{"uninstall", "rm"},
		Short:             "Remove a tool installed from the catalog",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: managedToolCompletionFunc,
		Run: func(cmd *cobra.Command, args []string) {
			if err := installer.CheckToolchain(); err != nil {
				ui.Bad.Printf("crab: %v\n", err)
				os.Exit(1)
			}

			cat := loadCatalog()
			name := args[0]

			tool := cat.Get(name)
			if tool == nil {
				ui.Warn.Printf("crab: unknown tool %q\n", name)
				os.Exit(1)
			}

			ui.Banner("removing")

			if err := installer.Uninstall(tool.CrateName()); err != nil {
				ui.Bad.Printf("\n  Remove failed: %v\n", err)
				os.Exit(1)
			}

			_ = state.Remove(name)

			fmt.Println()
			ui.Good.Printf("  %s %s removed\n", ui.StatusIcon(true), tool.Name)
		},
	}
}
