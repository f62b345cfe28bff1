package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ui"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// cfg is filled by the root command's PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "go-solver",
	Short: "Interactive Wordle assistant",
	Long: `go-solver suggests opening guesses, then narrows the word list with the
feedback you enter after each guess and ranks the remaining candidates by
expected information.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runSession,
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("words", "", "word list file (.json or one word per line); default is the embedded list")
	rootCmd.PersistentFlags().String("openers", "", "opening guesses JSON file; default is the embedded list")
	rootCmd.PersistentFlags().Int("top", 0, "ranked candidates shown per turn (overrides TOP_N)")
}

// loadConfig reads the environment and lets flags override it.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg = config.Load()
	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.WordsFile, _ = flags.GetString("words")
	}
	if flags.Changed("openers") {
		cfg.OpenersFile, _ = flags.GetString("openers")
	}
	if flags.Changed("top") {
		cfg.TopN, _ = flags.GetInt("top")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.ApplyLogLevel()
	return nil
}

func runSession(cmd *cobra.Command, _ []string) error {
	corpus, err := words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	openers, err := words.LoadOpeners(cfg.OpenersFile)
	if err != nil {
		return fmt.Errorf("load openers: %w", err)
	}
	log.Info().Int("words", corpus.Len()).Int("openers", len(openers)).Msg("word lists loaded")

	printer := ui.NewPrinter(os.Stdout)
	printer.Openers(startupOpeners(openers, cfg.OpenersPool, cfg.OpenersShown))

	loop := session.NewLoop(corpus.Words(), ui.NewPrompter(os.Stdin, os.Stdout), printer, session.Options{
		TopN:     cfg.TopN,
		Progress: ui.NewProgress(os.Stderr, progressEnabled(), "ranking"),
	})
	return loop.Run(cmd.Context())
}

// startupOpeners draws shown openers at random from the best pool entries.
func startupOpeners(list []words.Opener, pool, shown int) []words.Opener {
	if pool < len(list) {
		list = list[:pool]
	}
	return words.Sample(list, shown)
}

func progressEnabled() bool {
	return !cfg.NoProgress && isatty.IsTerminal(os.Stderr.Fd())
}
