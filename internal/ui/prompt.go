package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

const (
	promptGuess   = "Enter your guess:"
	promptPattern = "Enter placement map (gray: 0, yellow: 1, green: 2)"
	promptShowAll = "Want to log ALL the possible matches?"
)

// NewPrompter returns an interactive form when in is a terminal and a line
// reader otherwise (pipes, files, CI).
func NewPrompter(in *os.File, out io.Writer) session.Prompter {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return NewLinePrompter(in, out)
	}
	return &FormPrompter{in: in, out: out}
}

// FormPrompter asks for a turn with a huh form.
type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *FormPrompter) Prompt(ctx context.Context) (session.Input, error) {
	var in session.Input
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(promptGuess).Value(&in.Word),
			huh.NewInput().Title(promptPattern).Value(&in.Feedback),
			huh.NewConfirm().Title(promptShowAll).Affirmative("Yes").Negative("No").Value(&in.ShowAll),
		),
	).WithInput(p.in).WithOutput(p.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return session.Input{}, session.ErrAborted
		}
		return session.Input{}, err
	}
	_, _ = fmt.Fprintf(p.out, "%s %s (%s)\n", promptGuess, in.Word, in.Feedback)
	return in, nil
}

// LinePrompter reads one answer per line.
type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads from r and echoes the questions to out.
func NewLinePrompter(r io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), out: out}
}

func (p *LinePrompter) Prompt(ctx context.Context) (session.Input, error) {
	var in session.Input
	var err error
	if in.Word, err = p.ask(ctx, "? "+promptGuess+" "); err != nil {
		return in, err
	}
	if in.Feedback, err = p.ask(ctx, "? "+promptPattern+" "); err != nil {
		return in, err
	}
	answer, err := p.ask(ctx, "? "+promptShowAll+" (y/N) ")
	if err != nil && !errors.Is(err, io.EOF) {
		return in, err
	}
	in.ShowAll = parseYes(answer)
	return in, nil
}

// ask prints question and returns the next line. A final line without a
// newline is returned; io.EOF comes only when nothing was read.
func (p *LinePrompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, _ = io.WriteString(p.out, question)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
