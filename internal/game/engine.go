// internal/game/engine.go
//
// Game engine for simulated sessions.
// Responsibilities:
//   - Create games with fixed dimensions (6x5) against a known answer.
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses with the standard two-pass Wordle algorithm (feedback.Score).
//   - Track state transitions: playing → won/lost.
//
// The solver never sees the answer; it only receives the patterns returned
// by ApplyGuess.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// DefaultRows is the number of guesses a game allows.
const DefaultRows = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotInList    = errors.New("not in word list")
)

// New constructs a game for answer. Guesses are checked against allowed;
// a nil list accepts any well-formed word.
func New(answer string, allowed WordList) *Game {
	return &Game{
		ID:      randomID(),
		Answer:  strings.ToLower(strings.TrimSpace(answer)),
		Rows:    DefaultRows,
		Cols:    feedback.Size,
		Guesses: []string{},
		allowed: allowed,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the pattern, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters a–z.
//   - Guess must be present in the allowed list, when one is set.
//
// State transitions:
//   - All green → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (feedback.Pattern, State, error) {
	if g.Finished {
		return feedback.Pattern{}, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return feedback.Pattern{}, g.State(), ErrInvalidGuess
	}
	if g.allowed != nil && !g.allowed.Contains(guess) {
		return feedback.Pattern{}, g.State(), ErrNotInList
	}

	p := feedback.Score(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)
	g.Patterns = append(g.Patterns, p)

	if p.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return p, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
