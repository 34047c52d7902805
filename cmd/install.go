package cmd

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/gabrielgad/crab/internal/classify"
	"github.com/gabrielgad/crab/internal/config"
	"github.com/gabrielgad/crab/internal/installer"
	"github.com/gabrielgad/crab/internal/selection"
	"github.com/gabrielgad/crab/internal/state"
	"github.com/gabrielgad/crab/internal/ui"
)

// runInstall drives a full run: pre-flight, selection, the sequential
// install walk, then the summary. A missing toolchain exits 1 before any
// work; install failures are reported in the summary and never change the
// exit status.
func runInstall(mode selection.Mode) {
	if err := installer.CheckToolchain(); err != nil {
		ui.Bad.Printf("crab: %v\n", err)
		if runtime.GOOS == "windows" {
			fmt.Println("  Install Rust from https://win.rustup.rs")
		} else {
			fmt.Println("  Run: " + installer.RustupCommand)
		}
		os.Exit(1)
	}

	cat := loadCatalog()
	ui.Banner("rust toolbelt installer")

	if mode == selection.Interactive {
		printMenu(cat)
	}

	selected := selection.Select(cat, mode, stdinAnswers{bufio.NewScanner(os.Stdin)})
	if len(selected) == 0 {
		fmt.Println("  Nothing selected.")
		return
	}

	fmt.Println()
	cfg := config.Load()
	outcomes := installer.Run(selected, cat, installer.NewCargo(cfg.Install.Locked), consoleProgress{})
	recordInstalled(outcomes)

	printSummary(installer.Summarize(outcomes))
	printTips(outcomes)
}

func printMenu(cat *catalog.Catalog) {
	fmt.Println("  Available tools:")
	fmt.Println()
	for _, t := range cat.All() {
		name := fmt.Sprintf("%-10s", t.Name)
		fmt.Printf("    %s %s\n", ui.Brand.Sprint(name), ui.Subtle.Sprint(t.Description))
	}
	fmt.Println()
}

// stdinAnswers asks questions on stdout and reads replies line by line.
// EOF yields an empty reply, which Select treats as a yes.
type stdinAnswers struct {
	scanner *bufio.Scanner
}

func (s stdinAnswers) Ask(question string) string {
	fmt.Printf("  %s %s ", question, ui.Subtle.Sprint("[Y/n]:"))
	if !s.scanner.Scan() {
		fmt.Println()
		return ""
	}
	return s.scanner.Text()
}

// consoleProgress renders per-tool events during the install walk. Failure
// explanations stay out of the loop; the summary carries them.
type consoleProgress struct{}

func (consoleProgress) Skipped(t catalog.Tool) {
	fmt.Printf("  %s %s already installed, skipping\n", ui.Subtle.Sprint("-"), t.Name)
}

func (consoleProgress) Installing(t catalog.Tool) {
	fmt.Printf("  Installing %s...\n", ui.Brand.Sprint(t.Name))
}

func (consoleProgress) Installed(t catalog.Tool) {
	fmt.Printf("  %s %s installed\n", ui.StatusIcon(true), t.Name)
}

func (consoleProgress) Failed(t catalog.Tool, reason classify.Category) {
	fmt.Printf("  %s %s failed\n", ui.StatusIcon(false), t.Name)
}

// recordInstalled stores fresh installs in the state file, best effort.
func recordInstalled(outcomes []installer.Outcome) {
	for _, o := range outcomes {
		if o.Status != installer.Installed {
			continue
		}
		dt := catalog.DetectOne(o.Tool)
		_ = state.Record(o.Tool.Name, dt.Version, o.Tool.CrateName(), dt.Path)
	}
}

func printSummary(s installer.Summary) {
	fmt.Println()
	fmt.Printf("  %d installed", s.Installed)
	if s.Skipped > 0 {
		fmt.Printf(" · %d skipped", s.Skipped)
	}
	if s.Failed() > 0 {
		fmt.Printf(" · %d failed", s.Failed())
	}
	fmt.Println()

	if s.Failed() == 0 {
		return
	}

	fmt.Println()
	ui.Bad.Println("  Failures:")
	for _, f := range s.Failures {
		fmt.Printf("    %s %s — %s\n", ui.StatusIcon(false), f.Tool, f.Reason.Explanation())
		if remedy := f.Reason.Remedy(); remedy != "" {
			fmt.Printf("      try: %s\n", ui.Subtle.Sprint(remedy))
		}
	}
}

// printTips shows a usage line for each selected tool that is now present.
// An empty selection never reaches here, so tips follow the same
// short-circuit as the install walk.
func printTips(outcomes []installer.Outcome) {
	var present []catalog.Tool
	for _, o := range outcomes {
		if o.Status == installer.Failed || o.Tool.Tip == "" {
			continue
		}
		present = append(present, o.Tool)
	}
	if len(present) == 0 {
		return
	}

	fmt.Println()
	ui.Info.Println("  Get started:")
	for _, t := range present {
		fmt.Printf("    %s\n", t.Tip)
	}
}
