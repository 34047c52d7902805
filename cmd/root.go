package cmd

import (
	"embed"
	"os"

	"github.com/gabrielgad/crab/internal/catalog"
	"github.com/gabrielgad/crab/internal/config"
	"github.com/gabrielgad/crab/internal/selection"
	"github.com/gabrielgad/crab/internal/ui"
	"github.com/gabrielgad/crab/internal/update"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var (
	cat         *catalog.Catalog
	catalogFS   embed.FS
	offlineMode bool
	installAll  bool
)

// SetCatalogFS sets the embedded filesystem containing TOML catalog files.
func SetCatalogFS(fs embed.FS) {
	catalogFS = fs
}

func loadCatalog() *catalog.Catalog {
	if cat != nil {
		return cat
	}
	c, err := catalog.LoadAll(catalogFS, "catalog")
	if err != nil {
		ui.Bad.Printf("crab: failed to load catalog: %v\n", err)
		return catalog.New(nil)
	}
	cat = c
	return cat
}

var rootCmd = &cobra.Command{
	Use:     "crab",
	Short:   "crab — the Rust toolbelt installer",
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		mode := selection.Interactive
		if installAll {
			mode = selection.All
		}
		runInstall(mode)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if !offlineMode {
			update.CheckForUpdate(version)
		}
	},
}

func init() {
	rootCmd.SetVersionTemplate("crab {{ .Version }}\n")
	rootCmd.Flags().BoolVar(&installAll, "all", false, "Install every catalog tool without prompting")
	rootCmd.PersistentFlags().BoolVar(&offlineMode, "offline", false, "Skip the update check")

	rootCmd.AddCommand(
		listCmd(),
		searchCmd(),
		doctorCmd(),
		infoCmd(),
		updateCmd(),
		removeCmd(),
		envCmd(),
		selfCmd(),
		completionCmd(),
	)
}

// applyUIConfig wires config and CRAB_EMOJI into the ui layer.
// A literal "0" in the environment disables emoji; any other value enables.
func applyUIConfig() {
	cfg := config.Load()
	if !cfg.UI.Color {
		ui.DisableColor()
	}

	emoji := cfg.UI.Emoji
	switch os.Getenv("CRAB_EMOJI") {
	case "":
	case "0":
		emoji = false
	default:
		emoji = true
	}
	ui.SetEmoji(emoji)
}

func longBanner() string {
	name := "crab"
	if e := ui.Emoji(ui.Crab); e != "" {
		name = e + " crab"
	}
	return ui.Brand.Sprint(name) + " — install the Rust-powered CLI toolbelt\n" +
		ui.Subtle.Sprint("Pick from a curated catalog and let cargo do the rest")
}

// Execute runs the root command.
func Execute() error {
	applyUIConfig()
	rootCmd.Long = longBanner()
	return rootCmd.Execute()
}
