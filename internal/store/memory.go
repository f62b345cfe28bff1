// internal/store/memory.go
//
// In-memory record of simulated games.
// Batch simulations run games concurrently and save each finished game here;
// the summary is computed from the stored games once the batch completes.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Store defines the interface for recorded games.
type Store interface {
	// Save records or updates a game.
	Save(ctx context.Context, g *game.Game) error

	// All returns every recorded game ordered by ID.
	All(ctx context.Context) ([]*game.Game, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) All(ctx context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	out := make([]*game.Game, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Summary aggregates the outcome of a batch of games.
type Summary struct {
	Played     int
	Won        int
	Lost       int
	Eliminated int   // stopped early with no candidates left
	Histogram  []int // Histogram[n] = games won in n guesses
}

// WinRate is Won/Played, or 0 for an empty batch.
func (s Summary) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// AverageGuesses is the mean number of guesses over won games.
func (s Summary) AverageGuesses() float64 {
	if s.Won == 0 {
		return 0
	}
	total := 0
	for n, c := range s.Histogram {
		total += n * c
	}
	return float64(total) / float64(s.Won)
}

// Summarize tallies games. rows sizes the histogram.
func Summarize(games []*game.Game, rows int) Summary {
	s := Summary{Played: len(games), Histogram: make([]int, rows+1)}
	for _, g := range games {
		switch {
		case g.Won:
			s.Won++
			if n := len(g.Guesses); n < len(s.Histogram) {
				s.Histogram[n]++
			}
		case g.Finished:
			s.Lost++
		default:
			s.Eliminated++
		}
	}
	return s
}
