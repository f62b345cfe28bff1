package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ui"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func mustCorpus(t *testing.T, list ...string) *words.Corpus {
	t.Helper()
	c, err := words.NewCorpus(list)
	require.NoError(t, err)
	return c
}

func TestStartupOpeners(t *testing.T) {
	list := []words.Opener{{Word: "stare"}, {Word: "slate"}, {Word: "raise"}, {Word: "crane"}}

	got := startupOpeners(list, 2, 10)
	assert.ElementsMatch(t, list[:2], got, "only the pool is sampled")

	assert.Len(t, startupOpeners(list, 50, 3), 3)
	assert.Empty(t, startupOpeners(list, 50, 0))
}

func TestScoreOpeners(t *testing.T) {
	corpus := mustCorpus(t, "crane", "slate", "trace")

	var total, ticks, finished int
	progress := func(n int) (func(), func()) {
		total = n
		return func() { ticks++ }, func() { finished++ }
	}

	got := scoreOpeners(corpus, 2, progress)
	require.Len(t, got, 2)
	assert.Equal(t, "crane", got[0].Word, "ties keep corpus order")
	assert.Equal(t, "slate", got[1].Word)
	assert.InDelta(t, 1.584962500721156, got[0].Score, 1e-9)
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, finished)

	assert.Len(t, scoreOpeners(corpus, 0, nil), 3)
}

func TestFirstGuess(t *testing.T) {
	corpus := mustCorpus(t, "crane", "slate", "trace")

	assert.Equal(t, "slate", firstGuess(corpus, []words.Opener{{Word: "stare"}, {Word: "slate"}}))
	assert.Equal(t, "crane", firstGuess(corpus, nil), "falls back to ranking the corpus")
}

func TestSimulate_Wins(t *testing.T) {
	corpus := mustCorpus(t, "crane", "slate", "trace")
	var buf bytes.Buffer

	g, err := simulate(context.Background(), corpus, []words.Opener{{Word: "slate"}},
		game.New("crane", corpus), ui.NewPrinter(&buf), session.Options{TopN: 10})
	require.NoError(t, err)
	assert.True(t, g.Won)
	assert.Equal(t, []string{"slate", "crane"}, g.Guesses)
	assert.Contains(t, buf.String(), "⬜⬜🟩⬜🟩")
	assert.Contains(t, buf.String(), "🟩🟩🟩🟩🟩")
}

func TestSimulate_NoCandidates(t *testing.T) {
	// the gray e in "speed" rules out "abide" even though it holds an e
	corpus := mustCorpus(t, "speed", "abide")

	g, err := simulate(context.Background(), corpus, []words.Opener{{Word: "speed"}},
		game.New("abide", corpus), ui.NewPrinter(&bytes.Buffer{}), session.Options{TopN: 10})
	assert.ErrorIs(t, err, errNoCandidates)
	assert.False(t, g.Finished)
	assert.Equal(t, []string{"speed"}, g.Guesses)
}

func TestSimulate_Cancelled(t *testing.T) {
	corpus := mustCorpus(t, "crane", "slate", "trace")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := simulate(ctx, corpus, nil, game.New("crane", corpus), ui.NewPrinter(&bytes.Buffer{}), session.Options{TopN: 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, g.Guesses)
}

func TestPlayBatch(t *testing.T) {
	corpus := mustCorpus(t, "crane", "slate", "trace")
	st := store.NewMemoryStore()

	require.NoError(t, playBatch(context.Background(), corpus, []words.Opener{{Word: "slate"}}, 8, 3, st))

	games, err := st.All(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 8)
	sum := store.Summarize(games, game.DefaultRows)
	assert.Equal(t, 8, sum.Played)
	assert.Equal(t, 8, sum.Won, "every answer is solved from slate")
}

func TestSimulateCmd_InterruptIsCleanExit(t *testing.T) {
	t.Setenv("WORDS_FILE", "")
	t.Setenv("OPENERS_FILE", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rootCmd.SetArgs([]string{"simulate", "--answer", "crane"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	assert.NoError(t, rootCmd.ExecuteContext(ctx))
}

func TestInterrupted(t *testing.T) {
	assert.NoError(t, interrupted(context.Canceled))
	assert.NoError(t, interrupted(fmt.Errorf("guess: %w", context.Canceled)))
	assert.NoError(t, interrupted(nil))
	assert.ErrorIs(t, interrupted(game.ErrNotInList), game.ErrNotInList)
}

func TestPlayBatch_Cancelled(t *testing.T) {
	corpus := mustCorpus(t, "crane", "slate", "trace")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := playBatch(ctx, corpus, nil, 4, 2, store.NewMemoryStore())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, interrupted(err))
}
