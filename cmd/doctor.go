package cmd

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/gabrielgad/crab/internal/classify"
	"github.com/gabrielgad/crab/internal/installer"
	"github.com/gabrielgad/crab/internal/ui"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"dr"},
		Short:   "Check the toolchain and build prerequisites",
		Run: func(cmd *cobra.Command, args []string) {
			ui.Banner("health check")

			rustcOK := checkRuntime("rustc", "rustc", "--version")
			cargoOK := checkRuntime("cargo", "cargo", "--version")
			checkLinker()
			checkBuildDep("pkg-config", classify.MissingPkgConfig)
			checkGit()

			cat := loadCatalog()
			detected := catalog.DetectInstalled(cat)
			fmt.Printf("\n  %d/%d toolbelt tools installed\n", len(detected), cat.Len())

			if !rustcOK || !cargoOK {
				fmt.Println()
				ui.Warn.Printf("  %s No working toolchain. Run: %s\n", ui.WarnIcon(), installer.RustupCommand)
			}
		},
	}
}

func checkRuntime(name, bin string, args ...string) bool {
	path, err := exec.LookPath(bin)
	if err != nil {
		fmt.Printf("  %s %s: not found\n", ui.StatusIcon(false), name)
		return false
	}
	out, _ := exec.Command(path, args...).Output()
	fmt.Printf("  %s %s %s\n", ui.StatusIcon(true), name, catalog.ExtractVersion(strings.TrimSpace(string(out))))
	return true
}

// checkLinker walks the usual C compiler names; crates with native
// dependencies need one to link.
func checkLinker() {
	for _, cc := range []string{"cc", "gcc", "clang"} {
		if installer.HasCommand(cc) {
			fmt.Printf("  %s linker (%s)\n", ui.StatusIcon(true), cc)
			return
		}
	}
	fmt.Printf("  %s linker: not found\n", ui.WarnIcon())
	fmt.Printf("      try: %s\n", ui.Subtle.Sprint(classify.MissingLinker.Remedy()))
}

func checkBuildDep(bin string, cat classify.Category) {
	if installer.HasCommand(bin) {
		fmt.Printf("  %s %s\n", ui.StatusIcon(true), bin)
		return
	}
	fmt.Printf("  %s %s: not found (needed by crates linking system libraries)\n", ui.WarnIcon(), bin)
	fmt.Printf("      try: %s\n", ui.Subtle.Sprint(cat.Remedy()))
}

func checkGit() {
	if installer.HasCommand("git") {
		fmt.Printf("  %s git\n", ui.StatusIcon(true))
		return
	}
	fmt.Printf("  %s git: not found (cargo needs it for git dependencies)\n", ui.Subtle.Sprint("-"))
}
