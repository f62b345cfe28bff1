package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ui"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var openersCmd = &cobra.Command{
	Use:   "openers",
	Short: "Score every word as an opening guess and write the ranked JSON list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		out, _ := cmd.Flags().GetString("out")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative, got %d", limit)
		}

		corpus, err := words.Load(cfg.WordsFile)
		if err != nil {
			return fmt.Errorf("load word list: %w", err)
		}

		var w io.Writer = os.Stdout
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			w = f
		}

		list := scoreOpeners(corpus, limit, ui.NewProgress(os.Stderr, progressEnabled(), "scoring"))
		if err := words.WriteOpeners(w, list); err != nil {
			return fmt.Errorf("write openers: %w", err)
		}
		log.Info().Int("words", corpus.Len()).Int("written", len(list)).Str("out", out).Msg("openers written")
		return nil
	},
}

func init() {
	openersCmd.Flags().Int("limit", 50, "number of openers to write (0 = all)")
	openersCmd.Flags().String("out", "", "output file (default stdout)")
	rootCmd.AddCommand(openersCmd)
}

// scoreOpeners ranks every corpus word against the whole corpus and keeps
// the best limit entries (all when limit is 0).
func scoreOpeners(corpus *words.Corpus, limit int, progress session.ProgressFunc) []words.Opener {
	var opts []solver.RankOption
	if progress != nil {
		tick, done := progress(corpus.Len())
		defer done()
		opts = append(opts, solver.WithProgress(tick))
	}

	ranked := solver.Top(solver.Rank(corpus.Words(), corpus.Words(), opts...), limit)
	out := make([]words.Opener, len(ranked))
	for i, s := range ranked {
		out[i] = words.Opener{Word: s.Word, Score: s.Value}
	}
	return out
}
