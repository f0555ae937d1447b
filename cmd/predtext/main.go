// predtext is a command-line harness around the weighted trie: it loads a
// dictionary, optionally seeds weights from a raw text corpus, and answers
// completion, correction and combined prediction queries.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/urfave/cli.v1"

	"github.com/ppatil/predtext/dict"
	"github.com/ppatil/predtext/ngram"
	"github.com/ppatil/predtext/suggest"
	"github.com/ppatil/predtext/trie"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var (
	dictFlag = cli.StringFlag{
		Name:  "dict",
		Usage: "Path to the dictionary file",
	}
	weightedFlag = cli.BoolFlag{
		Name:  "weighted",
		Usage: "Dictionary lines carry a weight after each word",
	}
	delimitersFlag = cli.StringFlag{
		Name:  "delimiters",
		Usage: "Token delimiter set for dictionary lines",
		Value: dict.DefaultDelimiters,
	}
	corpusFlag = cli.StringFlag{
		Name:  "corpus",
		Usage: "Raw text file whose term frequencies seed the weights",
	}
	kFlag = cli.IntFlag{
		Name:  "k",
		Usage: "Maximum number of completions per prefix",
		Value: 10,
	}
	distanceFlag = cli.IntFlag{
		Name:  "distance",
		Usage: "Maximum Levenshtein distance for corrections",
		Value: 2,
	}
)

var completeCommand = cli.Command{
	Action:    complete,
	Name:      "complete",
	Usage:     "Print the top-k completions of a prefix, best weight first",
	ArgsUsage: "PREFIX",
	Flags:     []cli.Flag{dictFlag, weightedFlag, delimitersFlag, corpusFlag, kFlag},
}

var correctCommand = cli.Command{
	Action:    correct,
	Name:      "correct",
	Usage:     "Print stored words within an edit-distance bound of a word",
	ArgsUsage: "WORD",
	Flags:     []cli.Flag{dictFlag, weightedFlag, delimitersFlag, corpusFlag, distanceFlag},
}

var predictCommand = cli.Command{
	Action:    predict,
	Name:      "predict",
	Usage:     "Correct a word, then complete each correction",
	ArgsUsage: "WORD",
	Flags:     []cli.Flag{dictFlag, weightedFlag, delimitersFlag, corpusFlag, distanceFlag, kFlag},
}

func main() {
	app := cli.NewApp()
	app.Name = "predtext"
	app.Usage = "weighted-trie completion and correction"
	app.Commands = []cli.Command{completeCommand, correctCommand, predictCommand}
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// loadIndex builds the trie from the --dict file and, when --corpus is
// given, overlays term frequencies from the raw text as weights.
func loadIndex(ctx *cli.Context) (*trie.Trie, error) {
	path := ctx.String(dictFlag.Name)
	if path == "" {
		return nil, cli.NewExitError("missing --dict", 1)
	}
	t := trie.NewTrie()
	start := time.Now()
	n, err := dict.LoadDelims(t, path, ctx.Bool(weightedFlag.Name), ctx.String(delimitersFlag.Name))
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", n).Dur("elapsed", time.Since(start)).Msg("dictionary loaded")

	if corpus := ctx.String(corpusFlag.Name); corpus != "" {
		text, err := os.ReadFile(corpus)
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		seeded := ngram.SeedWeights(t, string(text))
		log.Info().Str("path", corpus).Int("tokens", seeded).Msg("weights seeded from corpus")
	}
	return t, nil
}

func queryArg(ctx *cli.Context) (string, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return "", cli.NewExitError("missing query argument", 1)
	}
	return arg, nil
}

func complete(ctx *cli.Context) error {
	t, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	prefix, err := queryArg(ctx)
	if err != nil {
		return err
	}
	for _, word := range t.Complete(prefix, ctx.Int(kFlag.Name)) {
		fmt.Println(word)
	}
	return nil
}

func correct(ctx *cli.Context) error {
	t, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	word, err := queryArg(ctx)
	if err != nil {
		return err
	}
	for _, s := range t.Suggest(word, ctx.Int(distanceFlag.Name)) {
		fmt.Printf("%s\t(distance %d, weight %g)\n", s.Word, s.Distance, s.Weight)
	}
	return nil
}

func predict(ctx *cli.Context) error {
	t, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	word, err := queryArg(ctx)
	if err != nil {
		return err
	}
	p := suggest.NewPredictor(t)
	for _, w := range p.Predict(word, ctx.Int(distanceFlag.Name), ctx.Int(kFlag.Name)) {
		fmt.Println(w)
	}
	return nil
}
