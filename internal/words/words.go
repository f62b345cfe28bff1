// internal/words/words.go
//
// Word corpus management for the solver.
//
// Responsibilities:
//   - Load the answer corpus from a configured file or fall back to the embedded default.
//   - Validate every entry (exactly 5 letters a–z after lowercasing/trimming).
//   - Supply lookups (Contains), counts, and a random answer for simulations.
//
// File formats:
//   - "*.json": an object {"words": ["cigar", "rebut", ...]}.
//   - anything else: one word per line; blank lines and "#" comments are skipped.
//
// Unlike a guess list, the corpus is the only source of candidates, so a bad
// entry is an error rather than silently dropped.

package words

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Length is the number of letters in every corpus word.
const Length = 5

var (
	ErrEmptyCorpus   = errors.New("words: corpus is empty")
	ErrInvalidWord   = errors.New("words: invalid word")
	ErrDuplicateWord = errors.New("words: duplicate word")
)

// Corpus is an immutable, ordered list of answer words.
type Corpus struct {
	words []string
	set   map[string]struct{}
}

// NewCorpus validates list and builds a Corpus. A repeated word is an error:
// it would count twice in every probability.
func NewCorpus(list []string) (*Corpus, error) {
	c := &Corpus{
		words: make([]string, 0, len(list)),
		set:   make(map[string]struct{}, len(list)),
	}
	for i, raw := range list {
		w := normalize(raw)
		if !valid(w) {
			return nil, fmt.Errorf("%w %q at entry %d", ErrInvalidWord, raw, i+1)
		}
		if _, dup := c.set[w]; dup {
			return nil, fmt.Errorf("%w %q at entry %d", ErrDuplicateWord, raw, i+1)
		}
		c.set[w] = struct{}{}
		c.words = append(c.words, w)
	}
	if len(c.words) == 0 {
		return nil, ErrEmptyCorpus
	}
	return c, nil
}

// Load reads the corpus at path, or the embedded default when path is empty.
func Load(path string) (*Corpus, error) {
	if path == "" {
		list, err := assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("read embedded corpus: %w", err)
		}
		return NewCorpus(list)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	var list []string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		list, err = decodeJSONList(f)
	} else {
		list, err = readLines(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	c, err := NewCorpus(list)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

// decodeJSONList parses {"words": [...]}.
func decodeJSONList(r io.Reader) ([]string, error) {
	var doc struct {
		Words []string `json:"words"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Words, nil
}

// readLines loads one word per line, skipping blanks and comments.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func normalize(s string) string { return strings.TrimSpace(strings.ToLower(s)) }

// valid reports whether w is Length lowercase ASCII letters.
func valid(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Words returns the corpus in load order. The slice is shared; copy before
// modifying.
func (c *Corpus) Words() []string { return c.words }

// Len returns the number of words.
func (c *Corpus) Len() int { return len(c.words) }

// Contains reports whether w (any case) is in the corpus.
func (c *Corpus) Contains(w string) bool {
	_, ok := c.set[normalize(w)]
	return ok
}

// Random returns a cryptographically random corpus word.
func (c *Corpus) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(c.words))))
	if err != nil {
		return c.words[0]
	}
	return c.words[n.Int64()]
}
