// internal/solver/filter.go
//
// Candidate filtering for the solver.
// Responsibilities:
//   - Decide whether a candidate word is consistent with a guess and its feedback.
//   - Produce the order-preserving subset of a candidate list and its share of the list.
//
// Rules per position i of the pattern (target is the guessed word):
//   - green:  candidate[i] == target[i].
//   - gray:   target[i] appears nowhere in candidate.
//   - yellow: target[i] appears in candidate, its first occurrence is not a
//             green position, and candidate[i] != target[i].
//
// The gray rule ignores duplicate-letter accounting: a letter marked gray is
// excluded everywhere even when another copy of it is green or yellow. The
// opener scores in assets/openers.json were computed with this rule.

package solver

import (
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Result is the outcome of filtering a candidate list.
type Result struct {
	Matches     []string
	Probability float64
}

// constraint is a pattern resolved against one target word.
type constraint struct {
	target string
	marks  feedback.Pattern
	green  [feedback.Size]bool
}

func newConstraint(target string, p feedback.Pattern) constraint {
	c := constraint{target: target, marks: p}
	for _, i := range p.Indices(feedback.Green) {
		c.green[i] = true
	}
	return c
}

func (c *constraint) matches(word string) bool {
	if len(word) < feedback.Size || len(c.target) < feedback.Size {
		return false
	}
	for i, m := range c.marks {
		t := c.target[i]
		switch m {
		case feedback.Green:
			if word[i] != t {
				return false
			}
		case feedback.Gray:
			if strings.IndexByte(word, t) >= 0 {
				return false
			}
		case feedback.Yellow:
			at := strings.IndexByte(word, t)
			if at < 0 {
				return false
			}
			if at < feedback.Size && c.green[at] {
				return false
			}
			if word[i] == t {
				return false
			}
		}
	}
	return true
}

// Filter returns the candidates consistent with target receiving p, in input
// order, together with their share of candidates (0 for an empty list).
func Filter(target string, p feedback.Pattern, candidates []string) Result {
	c := newConstraint(target, p)
	var out []string
	for _, w := range candidates {
		if c.matches(w) {
			out = append(out, w)
		}
	}
	return Result{Matches: out, Probability: ratio(len(out), len(candidates))}
}

// Count is Filter without collecting the matches.
func Count(target string, p feedback.Pattern, candidates []string) int {
	c := newConstraint(target, p)
	n := 0
	for _, w := range candidates {
		if c.matches(w) {
			n++
		}
	}
	return n
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
