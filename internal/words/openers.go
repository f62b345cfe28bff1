package words

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Opener is a suggested first guess with its precomputed expected value.
// On disk it is the pair [word, score].
type Opener struct {
	Word  string
	Score float64
}

// MarshalJSON encodes o as [word, score] with the score rounded to 5 decimals.
func (o Opener) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{o.Word, math.Round(o.Score*1e5) / 1e5})
}

func (o *Opener) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("opener: want [word, score], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &o.Word); err != nil {
		return fmt.Errorf("opener word: %w", err)
	}
	if err := json.Unmarshal(pair[1], &o.Score); err != nil {
		return fmt.Errorf("opener score: %w", err)
	}
	o.Word = normalize(o.Word)
	if !valid(o.Word) {
		return fmt.Errorf("%w %q", ErrInvalidWord, o.Word)
	}
	return nil
}

// LoadOpeners reads the ranked opening-guess list at path, or the embedded
// default when path is empty.
func LoadOpeners(path string) ([]Opener, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = assets.OpenersJSON()
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read openers: %w", err)
	}

	var out []Opener
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode openers: %w", err)
	}
	return out, nil
}

// WriteOpeners encodes list in the on-disk format, one pair per line.
func WriteOpeners(w io.Writer, list []Opener) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, o := range list {
		b, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("encode opener %q: %w", o.Word, err)
		}
		sep := ","
		if i == len(list)-1 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "  %s%s\n", b, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

// Sample returns n elements of items in random order (all of them when n
// exceeds the length). items is not modified.
func Sample[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:n]
}
