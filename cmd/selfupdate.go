package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/gabrielgad/crab/internal/installer"
	"github.com/gabrielgad/crab/internal/ui"
	"github.com/gabrielgad/crab/internal/update"
	"github.com/spf13/cobra"
)

func selfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "self",
		Aliases: []string{"self-update", "selfupdate"},
		Short:   "Manage crab itself",
	}

	cmd.AddCommand(
		selfUpdateCmd(),
	)

	return cmd
}

func selfUpdateCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update crab to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			if check {
				ui.Banner("version check")
				update.CheckNow(version)
				return
			}

			ui.Banner("self-update")

			if !installer.HasCommand("go") {
				fmt.Println("  Go toolchain not found.")
				fmt.Println("  Grab a release from https://github.com/gabrielgad/crab/releases")
				os.Exit(1)
			}

			fmt.Println("  Updating via go install...")
			c := exec.Command("go", "install", "github.com/gabrielgad/crab@latest")
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			if err := c.Run(); err != nil {
				ui.Bad.Printf("\n  Update failed: %v\n", err)
				os.Exit(1)
			}

			fmt.Println()
			ui.Good.Printf("  %s crab updated successfully\n", ui.StatusIcon(true))
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Only check for updates, don't install")
	return cmd
}
