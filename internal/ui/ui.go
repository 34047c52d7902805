package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiRed, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

const Crab = "\U0001F980" // 🦀

var emojiOn = true

// SetEmoji toggles decorative emoji output. Status icons are unaffected.
func SetEmoji(on bool) {
	emojiOn = on
}

// Emoji returns s when emoji output is enabled, otherwise "".
func Emoji(s string) string {
	if emojiOn {
		return s
	}
	return ""
}

// DisableColor turns off ANSI color output for all styles. Enabling is left
// to the color package, which already honors NO_COLOR and non-tty output.
func DisableColor() {
	color.NoColor = true
}

// Banner prints the crab banner with a subtitle.
func Banner(subtitle string) {
	if emojiOn {
		fmt.Printf("%s %s — %s\n\n", Crab, Brand.Sprint("crab"), subtitle)
		return
	}
	fmt.Printf("%s — %s\n\n", Brand.Sprint("crab"), subtitle)
}

// Table prints a simple aligned table.
func Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Print header
	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Println(headerLine)
	Subtle.Println(sepLine)

	// Print rows
	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Println(line)
	}
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// WarnIcon returns a warning icon.
func WarnIcon() string {
	return Warn.Sprint("⚠")
}
