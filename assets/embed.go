// Package assets embeds the default word corpus and the ranked opening-guess
// list so the solver runs even when no data files are configured.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed answers.txt openers.json
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded corpus, one word per entry.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// OpenersJSON returns the raw embedded opening-guess document.
func OpenersJSON() ([]byte, error) {
	f, err := FS.Open("openers.json")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
