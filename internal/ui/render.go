package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Precision is the number of decimals printed for probabilities and scores.
const Precision = 5

// Printer writes human-readable session output. It implements session.Renderer.
type Printer struct {
	w  io.Writer
	st styles
}

// NewPrinter binds a Printer to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, st: newStyles(w)}
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) stat(label, symbol, value string) {
	p.printf("%s %s %s\n",
		p.st.Label.Render(fmt.Sprintf("%-18s", label)),
		p.st.Symbol.Render(fmt.Sprintf("%8s", symbol)),
		p.st.Value.Render(value))
}

func (p *Printer) score(v float64) string {
	return p.st.Value.Render(fmt.Sprintf("%.*f", Precision, v))
}

// Openers prints the startup suggestions.
func (p *Printer) Openers(list []words.Opener) {
	p.printf("%s\n\n", p.st.Title.Render("Best First Words:"))
	for _, o := range list {
		p.printf("%s - %s\n", o.Word, p.score(o.Score))
	}
	p.printf("\n")
}

// Report prints the statistics of a turn and the ranked candidates.
func (p *Printer) Report(r session.Report) {
	p.printf("\n")
	p.stat("Possible Matches:", "n = ", fmt.Sprint(r.Matches))
	p.stat("Probability:", "p(x) = ", fmt.Sprintf("%.*f", Precision, r.Probability))
	p.stat("Expected Value:", "E(x) = ", fmt.Sprintf("%.*f", Precision, r.ExpectedValue))
	p.printf("\n")
	p.Ranked(r.Ranked)
	if r.Truncated {
		p.printf("%s\n", p.st.Muted.Render(fmt.Sprintf("(top %d of %d)", len(r.Ranked), r.Matches)))
	}
	p.printf("\n")
}

// Ranked prints one "word - score" line per entry.
func (p *Printer) Ranked(list []solver.Scored) {
	for _, s := range list {
		p.printf("%s - %s\n", s.Word, p.score(s.Value))
	}
}

// Rejected prints every violated input rule.
func (p *Printer) Rejected(err error) {
	rules := []string{err.Error()}
	var ve *session.ValidationError
	if errors.As(err, &ve) {
		rules = ve.Rules
	}
	for _, r := range rules {
		p.printf("%s\n", p.st.Error.Render(r))
	}
}

// Board prints a guess as colored tiles followed by its emoji row.
func (p *Printer) Board(guess string, pat feedback.Pattern) {
	var sb strings.Builder
	for i := 0; i < len(guess) && i < feedback.Size; i++ {
		letter := strings.ToUpper(guess[i : i+1])
		switch pat[i] {
		case feedback.Green:
			sb.WriteString(p.st.TileGreen.Render(letter))
		case feedback.Yellow:
			sb.WriteString(p.st.TileYellow.Render(letter))
		default:
			sb.WriteString(p.st.TileGray.Render(letter))
		}
	}
	p.printf("%s  %s\n", sb.String(), pat.Emoji())
}

// Line prints a plain message.
func (p *Printer) Line(format string, args ...any) {
	p.printf(format+"\n", args...)
}

// Warn prints a message in the error style.
func (p *Printer) Warn(format string, args ...any) {
	p.printf("%s\n", p.st.Error.Render(fmt.Sprintf(format, args...)))
}
