// cmd/wordle-corpus
//
// Builds and inspects the SQLite frequency corpus read by the game when
// WORDS_CORPUS_DB is set.
//
//	wordle-corpus import --db corpus.db --lang en en_50k.txt
//	wordle-corpus seed   --db corpus.db
//	wordle-corpus words  --db corpus.db --lang fr --length 5
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/desktop/assets"
	"github.com/robalobadob/wordle/apps/desktop/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbPath string

	root := &cobra.Command{
		Use:          "wordle-corpus",
		Short:        "Manage the word frequency corpus",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", os.Getenv("WORDS_CORPUS_DB"), "corpus database path (env WORDS_CORPUS_DB)")

	root.AddCommand(newImportCmd(&dbPath), newSeedCmd(&dbPath), newWordsCmd(&dbPath))
	return root
}

func newImportCmd(dbPath *string) *cobra.Command {
	var lang string
	topN := words.DefaultTopN

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace one language's ranked list with FILE (one word per line, most frequent first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			list, err := words.ReadRanked(cmd.Context(), f, topN)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			return importLists(cmd.Context(), *dbPath, map[string][]string{lang: list})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "language code")
	cmd.Flags().IntVar(&topN, "top", topN, "keep only the N most frequent words")
	return cmd
}

func newSeedCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Import the built-in lists for every supported language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := words.NewFSSource(assets.Frequency())
			lists := make(map[string][]string, len(words.Languages))
			for _, l := range words.Languages {
				list, err := src.Ranked(cmd.Context(), l.Code, words.DefaultTopN)
				if err != nil {
					return err
				}
				lists[l.Code] = list
			}
			return importLists(cmd.Context(), *dbPath, lists)
		},
	}
}

func newWordsCmd(dbPath *string) *cobra.Command {
	var (
		lang   string
		length int
		limit  int
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the candidate words the game would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, closeFn, err := words.OpenSource(*dbPath, dir)
			if err != nil {
				return err
			}
			defer closeFn()

			wl, err := words.NewCorpus(src, words.DefaultTopN).WordList(cmd.Context(), length, lang)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d words (%s, length %d)\n", wl.Len(), lang, length)
			for i, w := range wl.Words() {
				if limit > 0 && i >= limit {
					break
				}
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "language code")
	cmd.Flags().IntVar(&length, "length", 5, "word length")
	cmd.Flags().IntVar(&limit, "limit", 20, "print at most N words (0 for all)")
	cmd.Flags().StringVar(&dir, "dir", os.Getenv("WORDS_DIR"), "frequency files directory, used when --db is empty")
	return cmd
}

func importLists(ctx context.Context, dbPath string, lists map[string][]string) error {
	if dbPath == "" {
		return fmt.Errorf("--db is required")
	}
	db, err := words.OpenCorpusDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := words.Migrate(db); err != nil {
		return err
	}
	for lang, list := range lists {
		n, err := words.Import(ctx, db, lang, list)
		if err != nil {
			return err
		}
		log.Info().Str("lang", lang).Int("words", n).Str("db", dbPath).Msg("imported")
	}
	return nil
}
