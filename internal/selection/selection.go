package selection

import (
	"fmt"
	"strings"

	"github.com/gabrielgad/crab/internal/catalog"
)

// Mode picks between the --all shortcut and the interactive walk.
type Mode int

const (
	All Mode = iota
	Interactive
)

// AnswerSource asks the user one yes/no question and returns the raw reply.
// An empty reply (blank line, EOF) counts as yes; only an explicit "n"/"no"
// declines. Implementations own the rendering of the prompt.
type AnswerSource interface {
	Ask(question string) string
}

// Select turns the catalog into the ordered list of tool names to install.
//
// All mode returns the full catalog order without consulting the source.
// Interactive mode asks one aggregate question first; declining it walks the
// catalog one question per tool. The result is a possibly-empty subsequence
// of catalog order with no duplicates.
func Select(cat *catalog.Catalog, mode Mode, answers AnswerSource) []string {
	if mode == All {
		return cat.Names()
	}

	reply := answers.Ask(fmt.Sprintf("Install all %d tools?", cat.Len()))
	if !Declined(reply) {
		return cat.Names()
	}

	var picked []string
	for _, t := range cat.All() {
		reply := answers.Ask(fmt.Sprintf("Install %s (%s)?", t.Name, t.Description))
		if Declined(reply) {
			continue
		}
		picked = append(picked, t.Name)
	}
	return picked
}

// Declined reports whether a reply is an explicit no.
// Anything else, including silence, is a yes.
func Declined(reply string) bool {
	r := strings.ToLower(strings.TrimSpace(reply))
	return r == "n" || r == "no"
}
