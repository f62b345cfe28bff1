// internal/session/types.go
//
// Session state and per-turn payloads.
// Defines:
//   - State:  the candidate list carried from one turn to the next.
//   - Input:  what the user enters each turn (guess, placement map, show-all flag).
//   - Report: what a processed turn produces for rendering.
//   - Prompter/Renderer: the I/O ports the Loop drives.

package session

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrAborted is returned by a Prompter when the user cancels input.
var ErrAborted = errors.New("session: aborted by user")

// State is the solver's memory between turns. Candidates only ever shrink.
type State struct {
	Candidates []string // words still consistent with every accepted turn
	Turn       int      // accepted turns so far
}

// NewState starts a session over a copy of corpus.
func NewState(corpus []string) State {
	c := make([]string, len(corpus))
	copy(c, corpus)
	return State{Candidates: c}
}

// Input is one turn as typed by the user.
type Input struct {
	Word     string `validate:"len=5"`
	Feedback string `validate:"len=5,placement"`
	ShowAll  bool
}

// Report is the outcome of an accepted turn.
type Report struct {
	Turn          int
	Guess         string
	Pattern       feedback.Pattern
	Matches       int     // size of the filtered candidate list
	Probability   float64 // Matches / candidates before the turn
	ExpectedValue float64 // entropy of the guess over candidates before the turn
	Ranked        []solver.Scored
	Truncated     bool // Ranked was cut to Options.TopN
}

// Prompter collects one turn of input. It returns io.EOF or ErrAborted when
// no more input will come.
type Prompter interface {
	Prompt(ctx context.Context) (Input, error)
}

// Renderer presents turn outcomes.
type Renderer interface {
	Report(r Report)
	Rejected(err error)
}

// ProgressFunc starts progress reporting for total units of work and
// returns a tick callback and a completion callback.
type ProgressFunc func(total int) (tick func(), done func())

// Options tunes turn processing.
type Options struct {
	TopN     int          // ranked rows kept unless ShowAll; <= 0 keeps all
	Progress ProgressFunc // optional
}
