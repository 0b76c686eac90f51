package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"pokerrank/internal/config"
	"pokerrank/internal/render"
	"pokerrank/internal/rng"
	"pokerrank/pkg/deck"
	"pokerrank/pkg/handanalyzer"
	"pokerrank/pkg/handgen"
	"strings"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type options struct {
	command  string
	size     int
	extended bool
	wild     string
	seed     int64
	samples  int
	dealt    int
}

func main() {
	cfg := config.Instance()
	setupLogger(cfg)

	opts := options{}
	flag.StringVar(&opts.command, "c", "rank", "specifies the command (rank, profile, errant, deal)")
	flag.IntVar(&opts.size, "size", cfg.HandSize, "the number of cards in a scoring hand")
	flag.BoolVar(&opts.extended, "extended", cfg.Extended, "rank the bobtail categories")
	flag.StringVar(&opts.wild, "wild", strings.Join(cfg.WildCards, ","), "comma separated wild cards, i.e., 2*,**")
	flag.Int64Var(&opts.seed, "seed", cfg.Seed, "seed for dealt and generated hands (0 is random)")
	flag.IntVar(&opts.samples, "samples", cfg.Samples, "hands generated per category (errant) or hands dealt (deal)")
	flag.IntVar(&opts.dealt, "dealt", cfg.Dealt, "cards in each generated or dealt hand")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	logger := logrus.WithField("run", uuid.New().String())

	wilds, err := deck.ParseCards(opts.wild)
	if err != nil {
		logger.WithError(err).Fatal("could not parse wild cards")
	}

	ranker, err := handanalyzer.NewRanker(logger, handanalyzer.Options{HandSize: opts.size, Extended: opts.extended})
	if err != nil {
		logger.WithError(err).Fatal("could not create ranker")
	}

	switch opts.command {
	case "rank", "profile":
		err = eachHand(flag.Args(), func(cards []deck.Card) error {
			if opts.command == "profile" {
				return profile(ranker, cards, wilds)
			}

			return rank(ranker, cards, wilds)
		})
	case "errant":
		err = errant(logger, ranker, opts)
	case "deal":
		err = deal(ranker, wilds, opts)
	default:
		logger.Fatalf("unknown command: %s", opts.command)
	}

	if err != nil {
		logger.WithError(err).Fatal("command failed")
	}
}

// eachHand runs fn for every hand on the command line
// Without arguments, hands are read from stdin, one per line.
func eachHand(args []string, fn func(cards []deck.Card) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := handFromString(arg, fn); err != nil {
				return err
			}
		}

		return nil
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := getInput(reader, interactive)
		if err == io.EOF && line == "" {
			return nil
		} else if err != nil && err != io.EOF {
			return err
		}

		if line == "" {
			if interactive {
				return nil
			}

			continue
		}

		if err := handFromString(line, fn); err != nil {
			if !interactive {
				return err
			}

			// keep prompting after a typo
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
	}
}

func handFromString(s string, fn func(cards []deck.Card) error) error {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return err
	}

	return fn(cards)
}

func getInput(reader *bufio.Reader, prompt bool) (string, error) {
	if prompt {
		fmt.Print("Hand: ")
	}

	str, err := reader.ReadString('\n')
	return strings.TrimSpace(str), err
}

func rank(ranker *handanalyzer.Ranker, cards, wilds []deck.Card) error {
	result, err := ranker.Rank(cards, wilds)
	if err != nil {
		return err
	}

	fmt.Println(render.Result(cards, result))
	return nil
}

func profile(ranker *handanalyzer.Ranker, cards, wilds []deck.Card) error {
	results, err := ranker.Profile(cards, wilds)
	if err != nil {
		return err
	}

	table, err := render.Profile(results)
	if err != nil {
		return err
	}

	fmt.Println(table)
	return nil
}

// errant generates hands of every category and prints those that rank somewhere else
func errant(logger logrus.FieldLogger, ranker *handanalyzer.Ranker, opts options) error {
	gen := handgen.New(logger, rng.New(opts.seed), ranker)

	all := make([]handgen.Errant, 0)
	for _, category := range ranker.Categories() {
		found, err := gen.Errant(category, opts.dealt, opts.samples)
		if err != nil {
			return fmt.Errorf("%s: %w", category, err)
		}

		logger.WithFields(logrus.Fields{
			"category": category.String(),
			"samples":  opts.samples,
			"errant":   len(found),
		}).Info("checked category")
		all = append(all, found...)
	}

	if len(all) == 0 {
		pterm.Success.Printfln("no errant hands in %d samples per category", opts.samples)
		return nil
	}

	table, err := render.Errant(all)
	if err != nil {
		return err
	}

	fmt.Println(table)
	return nil
}

// deal shuffles a fresh deck for every hand and ranks what is dealt
func deal(ranker *handanalyzer.Ranker, wilds []deck.Card, opts options) error {
	seed := opts.seed
	if seed == 0 {
		seed = rng.Seed(rng.Crypto{})
	}

	d := deck.New()
	hands := make([][]deck.Card, opts.samples)
	results := make([]*handanalyzer.Result, opts.samples)
	for i := range hands {
		d.Shuffle(seed + int64(i))
		hand, err := d.DrawN(opts.dealt)
		if err != nil {
			return err
		}

		result, err := ranker.Rank(hand, wilds)
		if err != nil {
			return err
		}

		hands[i] = hand
		results[i] = result
	}

	table, err := render.Deal(hands, results)
	if err != nil {
		return err
	}

	fmt.Printf("seed: %d\n", seed)
	fmt.Println(table)
	return nil
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// tables go to stdout
	logrus.SetOutput(os.Stderr)
}
