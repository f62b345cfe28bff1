// internal/feedback/types.go
//
// Core type definitions for Wordle feedback.
// Defines:
//   - Mark: per-letter result of a guess (gray/yellow/green).
//   - Pattern: the five marks a guess receives against a hidden word.
//
// Patterns are written as five digits, gray=0, yellow=1, green=2, which is
// also the base-3 representation of the pattern's index (position 0 is the
// most significant digit).

package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of letters in a word and marks in a pattern.
const Size = 5

// Count is the number of distinct patterns (3^Size).
const Count = 243

// Mark represents the evaluation result for a single letter in a guess.
//   - Gray:   letter is not in the word.
//   - Yellow: letter is in the word but at another position.
//   - Green:  letter is at the correct position.
type Mark uint8

const (
	Gray Mark = iota
	Yellow
	Green
)

// Pattern is a complete feedback row.
type Pattern [Size]Mark

// AllGreen is the pattern of a solved word.
var AllGreen = Pattern{Green, Green, Green, Green, Green}

var (
	ErrPatternLength = errors.New("feedback: pattern must be 5 characters")
	ErrPatternSymbol = errors.New("feedback: pattern symbols must be 0, 1 or 2")
)

// Parse reads a digit pattern such as "01220".
func Parse(s string) (Pattern, error) {
	var p Pattern
	if len(s) != Size {
		return p, fmt.Errorf("%w: got %q", ErrPatternLength, s)
	}
	for i := 0; i < Size; i++ {
		c := s[i]
		if c < '0' || c > '2' {
			return p, fmt.Errorf("%w: %q at position %d", ErrPatternSymbol, c, i)
		}
		p[i] = Mark(c - '0')
	}
	return p, nil
}

// String renders the digit form.
func (p Pattern) String() string {
	var b [Size]byte
	for i, m := range p {
		b[i] = '0' + byte(m)
	}
	return string(b[:])
}

// Emoji renders the pattern as colored squares.
func (p Pattern) Emoji() string {
	var sb strings.Builder
	for _, m := range p {
		switch m {
		case Green:
			sb.WriteString("🟩")
		case Yellow:
			sb.WriteString("🟨")
		default:
			sb.WriteString("⬜")
		}
	}
	return sb.String()
}

// Solved reports whether every mark is green.
func (p Pattern) Solved() bool { return p == AllGreen }

// Indices returns the positions holding m, in ascending order.
func (p Pattern) Indices(m Mark) []int {
	var out []int
	for i, x := range p {
		if x == m {
			out = append(out, i)
		}
	}
	return out
}
