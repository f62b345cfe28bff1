// internal/game/types.go
//
// Core type definitions for the simulated game.
// Defines:
//   - State: coarse progress of a game (playing/won/lost).
//   - WordList: the lookup a game validates guesses against.
//   - Game: state for a single in-progress or finished game.

package game

import "github.com/robalobadob/wordle/apps/go-solver/internal/feedback"

// State reports whether a game is still running and how it ended.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// WordList is satisfied by *words.Corpus.
type WordList interface {
	Contains(w string) bool
}

// Game holds the state of a single simulated game.
type Game struct {
	ID       string             // Unique game identifier (random hex string).
	Answer   string             // The solution word (always lowercase).
	Rows     int                // Maximum number of guesses allowed (typically 6).
	Cols     int                // Number of letters per word (typically 5).
	Guesses  []string           // Guesses made so far (lowercased).
	Patterns []feedback.Pattern // Feedback per guess, same order as Guesses.
	Finished bool               // True once the game is over (won or lost).
	Won      bool               // True if the game was finished with a win.

	allowed WordList
}
