package solver

import (
	"math"
	"sort"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Scored pairs a word with its expected information value in bits.
type Scored struct {
	Word  string  `json:"word"`
	Value float64 `json:"value"`
}

// ExpectedValue is the Shannon entropy, in bits, of the feedback patterns
// target would produce over candidates. Patterns no candidate matches are
// skipped, so an empty list scores 0.
func ExpectedValue(target string, candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}
	var sum float64
	for _, p := range feedback.All() {
		prob := ratio(Count(target, p, candidates), len(candidates))
		if prob == 0 {
			continue
		}
		sum += prob * math.Log2(1/prob)
	}
	return sum
}

// RankOption configures Rank.
type RankOption func(*rankConfig)

type rankConfig struct {
	progress func()
}

// WithProgress registers fn to be called after each word is scored.
func WithProgress(fn func()) RankOption {
	return func(c *rankConfig) { c.progress = fn }
}

// Rank scores every word against candidates and orders them by value,
// highest first. Equal values keep their input order.
func Rank(words, candidates []string, opts ...RankOption) []Scored {
	var cfg rankConfig
	for _, o := range opts {
		o(&cfg)
	}

	out := make([]Scored, 0, len(words))
	for _, w := range words {
		out = append(out, Scored{Word: w, Value: ExpectedValue(w, candidates)})
		if cfg.progress != nil {
			cfg.progress()
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// Top returns the first n entries of ranked, or all of them when n <= 0.
func Top(ranked []Scored, n int) []Scored {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
