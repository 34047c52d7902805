package cmd

import (
	"fmt"
	"os"

	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/gabrielgad/crab/internal/classify"
	"github.com/gabrielgad/crab/internal/config"
	"github.com/gabrielgad/crab/internal/installer"
	"github.com/gabrielgad/crab/internal/state"
	"github.com/gabrielgad/crab/internal/ui"
	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:               "update [tool]",
		Aliases:           []string{"upgrade", "up"},
		Short:             "Rebuild installed tool(s) at the latest crate version",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: toolCompletionFunc,
		Run: func(cmd *cobra.Command, args []string) {
			if err := installer.CheckToolchain(); err != nil {
				ui.Bad.Printf("crab: %v\n", err)
				os.Exit(1)
			}

			cat := loadCatalog()
			cargo := installer.NewCargo(config.Load().Install.Locked)

			if len(args) == 1 {
				updateOne(cat, cargo, args[0])
				return
			}

			if all {
				updateAll(cat, cargo)
				return
			}

			cmd.Help()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Update every installed catalog tool")
	return cmd
}

func updateOne(cat *catalog.Catalog, cargo *installer.Cargo, name string) {
	tool := cat.Get(name)
	if tool == nil {
		ui.Warn.Printf("crab: unknown tool %q\n", name)
		os.Exit(1)
	}

	ui.Banner("updating")
	fmt.Printf("  Updating %s...\n", ui.Brand.Sprint(tool.Name))

	stderr, err := cargo.Install(tool.CrateName())
	if err != nil {
		reason := classify.Classify(stderr)
		ui.Bad.Printf("\n  Update failed: %s\n", reason.Explanation())
		if remedy := reason.Remedy(); remedy != "" {
			fmt.Printf("  try: %s\n", remedy)
		}
		os.Exit(1)
	}

	dt := catalog.DetectOne(*tool)
	_ = state.Record(tool.Name, dt.Version, tool.CrateName(), dt.Path)

	fmt.Println()
	ui.Good.Printf("  %s %s updated\n", ui.StatusIcon(true), tool.Name)
}

func updateAll(cat *catalog.Catalog, cargo *installer.Cargo) {
	detected := catalog.DetectInstalled(cat)

	ui.Banner("updating all tools")

	if len(detected) == 0 {
		fmt.Println("  No tools installed to update.")
		return
	}

	success := 0
	failed := 0

	for _, dt := range detected {
		fmt.Printf("  Updating %s... ", ui.Brand.Sprint(dt.Tool.Name))

		if _, err := cargo.Install(dt.Tool.CrateName()); err != nil {
			ui.Bad.Println("failed")
			failed++
			continue
		}

		ui.Good.Println("done")
		success++

		fresh := catalog.DetectOne(dt.Tool)
		_ = state.Record(dt.Tool.Name, fresh.Version, dt.Tool.CrateName(), fresh.Path)
	}

	fmt.Printf("\n  %d updated", success)
	if failed > 0 {
		fmt.Printf(" · %d failed", failed)
	}
	fmt.Println()
}
