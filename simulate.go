package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ui"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var errNoCandidates = errors.New("no candidates left")

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the assistant play a game against a hidden answer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		answer, _ := cmd.Flags().GetString("answer")
		useDaily, _ := cmd.Flags().GetBool("daily")
		games, _ := cmd.Flags().GetInt("games")
		workers, _ := cmd.Flags().GetInt("workers")
		if games < 1 || workers < 1 {
			return errors.New("--games and --workers must be positive")
		}
		if games > 1 && (answer != "" || useDaily) {
			return errors.New("--games plays random answers; drop --answer and --daily")
		}

		corpus, err := words.Load(cfg.WordsFile)
		if err != nil {
			return fmt.Errorf("load word list: %w", err)
		}
		openers, err := words.LoadOpeners(cfg.OpenersFile)
		if err != nil {
			return fmt.Errorf("load openers: %w", err)
		}

		if games > 1 {
			return interrupted(runBatch(cmd.Context(), corpus, openers, games, workers))
		}

		switch {
		case answer != "":
			if !corpus.Contains(answer) {
				return fmt.Errorf("%w: answer %q", game.ErrNotInList, answer)
			}
		case useDaily:
			answer = daily.Word(time.Now(), cfg.DailySalt, corpus.Words())
			log.Debug().Str("date", daily.DateKey(time.Now())).Msg("daily answer selected")
		default:
			answer = corpus.Random()
		}

		printer := ui.NewPrinter(os.Stdout)
		g, err := simulate(cmd.Context(), corpus, openers, game.New(answer, corpus), printer, session.Options{
			TopN:     cfg.TopN,
			Progress: ui.NewProgress(os.Stderr, progressEnabled(), "ranking"),
		})
		switch {
		case errors.Is(err, errNoCandidates):
			printer.Warn("Every candidate was eliminated; the answer was %s.", g.Answer)
			return nil
		case err != nil:
			return interrupted(err)
		}

		if g.Won {
			printer.Line("Solved %s in %d/%d.", g.Answer, len(g.Guesses), g.Rows)
		} else {
			printer.Line("Out of guesses; the answer was %s.", g.Answer)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().String("answer", "", "answer to play against (must be in the word list)")
	simulateCmd.Flags().Bool("daily", false, "play against today's answer")
	simulateCmd.Flags().Int("games", 1, "number of games with random answers to play")
	simulateCmd.Flags().Int("workers", runtime.NumCPU(), "games played concurrently when --games > 1")
	rootCmd.AddCommand(simulateCmd)
}

// interrupted turns a cancelled run (Ctrl-C) into a clean exit, as the
// interactive session does.
func interrupted(err error) error {
	if errors.Is(err, context.Canceled) {
		log.Debug().Err(err).Msg("simulation interrupted")
		return nil
	}
	return err
}

// simulate plays g to the end: the first guess is the best opener present in
// the corpus, every later guess the top-ranked candidate.
func simulate(ctx context.Context, corpus *words.Corpus, openers []words.Opener, g *game.Game, printer *ui.Printer, opts session.Options) (*game.Game, error) {
	st := session.NewState(corpus.Words())
	guess := firstGuess(corpus, openers)

	for !g.Finished {
		if err := ctx.Err(); err != nil {
			return g, err
		}
		pat, _, err := g.ApplyGuess(guess)
		if err != nil {
			return g, fmt.Errorf("guess %q: %w", guess, err)
		}
		printer.Board(guess, pat)
		if g.Finished {
			break
		}

		rep, next, err := session.Process(st, session.Input{Word: guess, Feedback: pat.String()}, opts)
		if err != nil {
			return g, err
		}
		st = next
		log.Debug().Int("turn", st.Turn).Str("guess", guess).Str("pattern", pat.String()).Int("matches", rep.Matches).Msg("simulated turn")
		if len(rep.Ranked) == 0 {
			return g, errNoCandidates
		}
		guess = rep.Ranked[0].Word
	}
	return g, nil
}

// playBatch plays n games with random answers, at most workers at a time,
// and records every game in st.
func playBatch(ctx context.Context, corpus *words.Corpus, openers []words.Opener, n, workers int, st store.Store) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	opts := session.Options{TopN: 1}

	for i := 0; i < n; i++ {
		g.Go(func() error {
			played, err := simulate(ctx, corpus, openers, game.New(corpus.Random(), corpus), ui.NewPrinter(io.Discard), opts)
			if err != nil && !errors.Is(err, errNoCandidates) {
				return err
			}
			return st.Save(ctx, played)
		})
	}
	return g.Wait()
}

func runBatch(ctx context.Context, corpus *words.Corpus, openers []words.Opener, n, workers int) error {
	st := store.NewMemoryStore()
	start := time.Now()
	if err := playBatch(ctx, corpus, openers, n, workers, st); err != nil {
		return err
	}
	games, err := st.All(ctx)
	if err != nil {
		return err
	}
	sum := store.Summarize(games, game.DefaultRows)
	log.Info().Int("games", sum.Played).Dur("elapsed", time.Since(start)).Msg("batch finished")

	printer := ui.NewPrinter(os.Stdout)
	printer.Line("Played %d, won %d (%.1f%%), lost %d, eliminated %d.",
		sum.Played, sum.Won, 100*sum.WinRate(), sum.Lost, sum.Eliminated)
	printer.Line("Average guesses when won: %.2f", sum.AverageGuesses())
	for guesses, c := range sum.Histogram {
		if guesses > 0 {
			printer.Line("%d: %d", guesses, c)
		}
	}
	return nil
}

func firstGuess(corpus *words.Corpus, openers []words.Opener) string {
	for _, o := range openers {
		if corpus.Contains(o.Word) {
			return o.Word
		}
	}
	return solver.Top(solver.Rank(corpus.Words(), corpus.Words()), 1)[0].Word
}
