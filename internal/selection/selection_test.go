package selection

import (
	"strings"
	"testing"

	"github.com/gabrielgad/crab/internal/catalog"
)

// scriptedAnswers replays canned replies and records every question asked.
// Once the script runs out it returns "" (EOF behaves like silence).
type scriptedAnswers struct {
	replies   []string
	questions []string
}

func (s *scriptedAnswers) Ask(question string) string {
	s.questions = append(s.questions, question)
	if len(s.replies) == 0 {
		return ""
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Tool{
		{Name: "bat", Description: "cat clone"},
		{Name: "ripgrep", Description: "fast grep"},
		{Name: "fd", Description: "fast find"},
		{Name: "zoxide", Description: "smarter cd"},
	})
}

func TestDeclined(t *testing.T) {
	tests := []struct {
		reply    string
		declined bool
	}{
		{"n", true},
		{"no", true},
		{"N", true},
		{"NO", true},
		{" n ", true},
		{"\tno\n", true},
		{"", false},
		{"y", false},
		{"yes", false},
		{"nope", false},
		{"never", false},
		{"maybe", false},
		{"0", false},
	}

	for _, tt := range tests {
		if got := Declined(tt.reply); got != tt.declined {
			t.Errorf("Declined(%q) = %v, want %v", tt.reply, got, tt.declined)
		}
	}
}

func TestSelectAllMode(t *testing.T) {
	answers := &scriptedAnswers{}
	picked := Select(testCatalog(), All, answers)

	if len(answers.questions) != 0 {
		t.Errorf("All mode should ask nothing, asked %v", answers.questions)
	}
	if strings.Join(picked, ",") != "bat,ripgrep,fd,zoxide" {
		t.Errorf("expected full catalog order, got %v", picked)
	}
}

func TestSelectAggregateYes(t *testing.T) {
	answers := &scriptedAnswers{replies: []string{"y"}}
	picked := Select(testCatalog(), Interactive, answers)

	if len(answers.questions) != 1 {
		t.Fatalf("aggregate yes should ask exactly one question, asked %d", len(answers.questions))
	}
	if answers.questions[0] != "Install all 4 tools?" {
		t.Errorf("unexpected aggregate question %q", answers.questions[0])
	}
	if strings.Join(picked, ",") != "bat,ripgrep,fd,zoxide" {
		t.Errorf("expected full catalog order, got %v", picked)
	}
}

func TestSelectAggregateSilenceIsYes(t *testing.T) {
	// EOF on the first prompt selects everything.
	answers := &scriptedAnswers{}
	picked := Select(testCatalog(), Interactive, answers)

	if len(answers.questions) != 1 {
		t.Fatalf("expected only the aggregate question, asked %d", len(answers.questions))
	}
	if len(picked) != 4 {
		t.Errorf("silence should select everything, got %v", picked)
	}
}

func TestSelectPerToolWalk(t *testing.T) {
	answers := &scriptedAnswers{replies: []string{"n", "y", "n", "", "no"}}
	picked := Select(testCatalog(), Interactive, answers)

	// Aggregate declined, then one question per tool in catalog order.
	if len(answers.questions) != 5 {
		t.Fatalf("expected 5 questions, asked %d: %v", len(answers.questions), answers.questions)
	}
	if answers.questions[1] != "Install bat (cat clone)?" {
		t.Errorf("unexpected per-tool question %q", answers.questions[1])
	}

	// bat=y, ripgrep=n, fd=silence(yes), zoxide=no.
	if strings.Join(picked, ",") != "bat,fd" {
		t.Errorf("expected bat,fd, got %v", picked)
	}
}

func TestSelectAllDeclined(t *testing.T) {
	answers := &scriptedAnswers{replies: []string{"n", "n", "no", "N", "n"}}
	picked := Select(testCatalog(), Interactive, answers)

	if len(picked) != 0 {
		t.Errorf("declining everything should select nothing, got %v", picked)
	}
}

func TestSelectWalkRunsOutOfAnswers(t *testing.T) {
	// Decline the aggregate, answer the first tool, then hit EOF:
	// the remaining tools default to yes.
	answers := &scriptedAnswers{replies: []string{"n", "n"}}
	picked := Select(testCatalog(), Interactive, answers)

	if strings.Join(picked, ",") != "ripgrep,fd,zoxide" {
		t.Errorf("expected ripgrep,fd,zoxide, got %v", picked)
	}
}

func TestSelectPreservesCatalogOrder(t *testing.T) {
	// Answer yes to tools out of any particular pattern; the result must
	// still be a subsequence of catalog order.
	answers := &scriptedAnswers{replies: []string{"n", "y", "n", "y", "y"}}
	picked := Select(testCatalog(), Interactive, answers)

	if strings.Join(picked, ",") != "bat,fd,zoxide" {
		t.Errorf("expected catalog-ordered subsequence, got %v", picked)
	}
}
