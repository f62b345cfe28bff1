package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listStub map[string]bool

func (l listStub) Contains(w string) bool { return l[w] }

func TestNew(t *testing.T) {
	g := New(" CRANE ", nil)
	assert.Equal(t, "crane", g.Answer)
	assert.Equal(t, 6, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Len(t, g.ID, 16)
	assert.Equal(t, StatePlaying, g.State())
	assert.NotEqual(t, g.ID, New("crane", nil).ID)
}

func TestApplyGuess_Win(t *testing.T) {
	g := New("crane", nil)

	p, st, err := g.ApplyGuess("trace")
	require.NoError(t, err)
	assert.Equal(t, "02212", p.String())
	assert.Equal(t, StatePlaying, st)

	p, st, err = g.ApplyGuess("Crane")
	require.NoError(t, err)
	assert.True(t, p.Solved())
	assert.Equal(t, StateWon, st)
	assert.Equal(t, []string{"trace", "crane"}, g.Guesses)
	assert.Len(t, g.Patterns, 2)

	_, _, err = g.ApplyGuess("slate")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyGuess_Loss(t *testing.T) {
	g := New("crane", nil)
	for i := 0; i < 5; i++ {
		_, st, err := g.ApplyGuess("pious")
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, st)
	}
	_, st, err := g.ApplyGuess("pious")
	require.NoError(t, err)
	assert.Equal(t, StateLost, st)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestApplyGuess_Validation(t *testing.T) {
	g := New("crane", listStub{"crane": true, "slate": true})

	_, _, err := g.ApplyGuess("cran")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, _, err = g.ApplyGuess("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, _, err = g.ApplyGuess("pious")
	assert.ErrorIs(t, err, ErrNotInList)

	assert.Empty(t, g.Guesses, "rejected guesses are not recorded")

	_, _, err = g.ApplyGuess("slate")
	assert.NoError(t, err)
}
