// internal/session/session.go
//
// The interactive solving loop.
//
// Each iteration walks AwaitingInput → Validating → Scoring → Reporting:
//   - Prompt for a guess, its placement map and the show-all flag.
//   - Reject malformed input with the violated rules; state is left as is.
//   - Filter the current candidates, score the guess and rank the survivors
//     against the candidates the turn started with.
//   - Render the report and carry the filtered list into the next turn.
//
// The loop is iterative and ends only when input ends (EOF, user abort or a
// cancelled context).

package session

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Process runs one turn against st. On a validation failure it returns st
// unchanged together with a *ValidationError.
func Process(st State, in Input, opts Options) (Report, State, error) {
	in = in.normalize()
	if err := Validate(in); err != nil {
		return Report{}, st, err
	}
	pattern, err := feedback.Parse(in.Feedback)
	if err != nil {
		return Report{}, st, err
	}

	start := time.Now()
	res := solver.Filter(in.Word, pattern, st.Candidates)
	ev := solver.ExpectedValue(in.Word, st.Candidates)

	var rankOpts []solver.RankOption
	if opts.Progress != nil && len(res.Matches) > 0 {
		tick, done := opts.Progress(len(res.Matches))
		defer done()
		rankOpts = append(rankOpts, solver.WithProgress(tick))
	}
	ranked := solver.Rank(res.Matches, st.Candidates, rankOpts...)

	rep := Report{
		Turn:          st.Turn + 1,
		Guess:         in.Word,
		Pattern:       pattern,
		Matches:       len(res.Matches),
		Probability:   res.Probability,
		ExpectedValue: ev,
		Ranked:        ranked,
	}
	if !in.ShowAll && opts.TopN > 0 && len(ranked) > opts.TopN {
		rep.Ranked = solver.Top(ranked, opts.TopN)
		rep.Truncated = true
	}

	next := State{Candidates: res.Matches, Turn: st.Turn + 1}
	if next.Candidates == nil {
		next.Candidates = []string{}
	}

	log.Debug().
		Int("turn", rep.Turn).
		Str("guess", rep.Guess).
		Str("pattern", pattern.String()).
		Int("before", len(st.Candidates)).
		Int("matches", rep.Matches).
		Dur("elapsed", time.Since(start)).
		Msg("turn processed")

	return rep, next, nil
}

// Loop owns the session state and drives a Prompter and a Renderer.
type Loop struct {
	prompter Prompter
	renderer Renderer
	opts     Options
	state    State
}

// NewLoop starts a session over corpus.
func NewLoop(corpus []string, p Prompter, r Renderer, opts Options) *Loop {
	return &Loop{prompter: p, renderer: r, opts: opts, state: NewState(corpus)}
}

// State returns the current session state.
func (l *Loop) State() State { return l.state }

// Step runs a single prompt/process/render iteration. Validation failures are
// rendered and swallowed; input errors are returned.
func (l *Loop) Step(ctx context.Context) error {
	in, err := l.prompter.Prompt(ctx)
	if err != nil {
		return err
	}
	rep, next, err := Process(l.state, in, l.opts)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			log.Debug().Strs("rules", ve.Rules).Msg("input rejected")
			l.renderer.Rejected(ve)
			return nil
		}
		return err
	}
	l.state = next
	l.renderer.Report(rep)
	return nil
}

// Run loops until input ends. End of input, a user abort and context
// cancellation all end the session with a nil error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := l.Step(ctx); err != nil {
			if isEndOfSession(err) {
				log.Debug().Err(err).Int("turns", l.state.Turn).Msg("session ended")
				return nil
			}
			return err
		}
	}
}

func isEndOfSession(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, ErrAborted) ||
		errors.Is(err, context.Canceled)
}
