package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestPrinter_Report(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Report(session.Report{
		Matches:       1,
		Probability:   1.0 / 3.0,
		ExpectedValue: 1.584962500721156,
		Ranked:        []solver.Scored{{Word: "crane", Value: 1.584962500721156}},
	})
	out := buf.String()
	assert.Contains(t, out, "Possible Matches:")
	assert.Contains(t, out, "n =  1")
	assert.Contains(t, out, "p(x) =  0.33333")
	assert.Contains(t, out, "E(x) =  1.58496")
	assert.Contains(t, out, "crane - 1.58496\n")
	assert.NotContains(t, out, "\x1b[", "plain writers get no escapes")
	assert.NotContains(t, out, "top ")
}

func TestPrinter_ReportTruncated(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Report(session.Report{
		Matches:   40,
		Ranked:    []solver.Scored{{Word: "pious", Value: 2}, {Word: "jumpy", Value: 1}},
		Truncated: true,
	})
	assert.Contains(t, buf.String(), "(top 2 of 40)")
}

func TestPrinter_Openers(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Openers([]words.Opener{{Word: "stare", Score: 5.784821}, {Word: "slate", Score: 5.77}})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Best First Words:\n\n"))
	assert.Contains(t, out, "stare - 5.78482\n")
	assert.Contains(t, out, "slate - 5.77000\n")
}

func TestPrinter_Rejected(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Rejected(&session.ValidationError{Rules: []string{"Word must be 5 letters long!", "Wrong syntax for placement"}})
	p.Rejected(errors.New("plain failure"))
	assert.Equal(t, "Word must be 5 letters long!\nWrong syntax for placement\nplain failure\n", buf.String())
}

func TestPrinter_Board(t *testing.T) {
	var buf bytes.Buffer
	pat, err := feedback.Parse("02100")
	require.NoError(t, err)
	NewPrinter(&buf).Board("crane", pat)
	out := buf.String()
	assert.Contains(t, out, " C  R  A  N  E ")
	assert.Contains(t, out, "⬜🟩🟨⬜⬜")
}

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("CRANE\n01220\ny\nslate\r\n00000\n\nlast\n22222"), &out)
	ctx := context.Background()

	in, err := p.Prompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Input{Word: "CRANE", Feedback: "01220", ShowAll: true}, in)

	in, err = p.Prompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Input{Word: "slate", Feedback: "00000"}, in)

	// input ends before the confirm question: the turn still counts
	in, err = p.Prompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Input{Word: "last", Feedback: "22222"}, in)

	_, err = p.Prompt(ctx)
	assert.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "? "+promptGuess)
	assert.Contains(t, out.String(), "? "+promptPattern)
	assert.Contains(t, out.String(), "(y/N)")
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLinePrompter(strings.NewReader("crane\n"), io.Discard).Prompt(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseYes(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", " YES ", "true", "1"} {
		assert.True(t, parseYes(s), s)
	}
	for _, s := range []string{"", "n", "no", "nope", "0"} {
		assert.False(t, parseYes(s), s)
	}
}

func TestNewProgress(t *testing.T) {
	assert.Nil(t, NewProgress(io.Discard, false, "ranking"))

	var buf bytes.Buffer
	progress := NewProgress(&buf, true, "ranking")
	require.NotNil(t, progress)

	tick, done := progress(MinProgress - 1)
	tick()
	done()
	assert.Zero(t, buf.Len(), "small jobs draw nothing")

	tick, done = progress(MinProgress)
	for i := 0; i < MinProgress; i++ {
		tick()
	}
	done()
	assert.NotZero(t, buf.Len())
}

func TestSession_EndToEnd(t *testing.T) {
	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader("crane\n012\nn\ncrane\n22222\nn\n"), &out)
	loop := session.NewLoop([]string{"crane", "slate", "trace"}, prompter, NewPrinter(&out), session.Options{TopN: 10})

	require.NoError(t, loop.Run(context.Background()))
	text := out.String()
	assert.Contains(t, text, "Placement must be 5 letters long!")
	assert.Contains(t, text, "p(x) =  0.33333")
	assert.Contains(t, text, "crane - 1.58496")
	assert.Equal(t, []string{"crane"}, loop.State().Candidates)
}
