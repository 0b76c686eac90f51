// Package handgen deals random hands that are built to contain a given category.
// It is used to look for hands the ranker under-ranks.
package handgen

import (
	"errors"
	"fmt"
	"pokerrank/internal/rng"
	"pokerrank/pkg/deck"
	"pokerrank/pkg/handanalyzer"

	"github.com/sirupsen/logrus"
)

// MaxAttempts is the number of hands dealt for one category before giving up
const MaxAttempts = 1000

// ErrAttemptsExhausted is returned when every attempt ranked higher than the requested category
var ErrAttemptsExhausted = errors.New("could not generate a hand of the category")

// Generator deals hands containing a category
// Cards are dealt with replacement, so a hand may hold the same card more than once.
type Generator struct {
	logger logrus.FieldLogger
	rng    rng.Generator
	ranker *handanalyzer.Ranker
}

// Errant is a generated hand the ranker put in a different category than the one it was built for
type Errant struct {
	Want   handanalyzer.Category
	Cards  []deck.Card
	Result *handanalyzer.Result
}

// New returns a generator that checks its hands with ranker
func New(logger logrus.FieldLogger, gen rng.Generator, ranker *handanalyzer.Ranker) *Generator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Generator{
		logger: logger,
		rng:    gen,
		ranker: ranker,
	}
}

// Value returns a random natural value
func (g *Generator) Value() deck.Value {
	return deck.Values[g.rng.Intn(len(deck.Values))]
}

// Suit returns a random natural suit
func (g *Generator) Suit() deck.Suit {
	return deck.Suits[g.rng.Intn(len(deck.Suits))]
}

// Card returns a random card
func (g *Generator) Card() deck.Card {
	return deck.NewCard(g.Value(), g.Suit())
}

// CardWithSuit returns a random card of suit
func (g *Generator) CardWithSuit(suit deck.Suit) deck.Card {
	return deck.NewCard(g.Value(), suit)
}

// CardWithValue returns a random card of value
func (g *Generator) CardWithValue(value deck.Value) deck.Card {
	return deck.NewCard(value, g.Suit())
}

// Cards returns n random cards
func (g *Generator) Cards(n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = g.Card()
	}

	return cards
}

func (g *Generator) cardsWithValue(value deck.Value, n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = g.CardWithValue(value)
	}

	return cards
}

func (g *Generator) cardsWithSuit(suit deck.Suit, n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = g.CardWithSuit(suit)
	}

	return cards
}

// twoValues returns two different random values
func (g *Generator) twoValues() (deck.Value, deck.Value) {
	first := g.Value()
	second := deck.Values[g.rng.Intn(len(deck.Values)-1)]
	if second >= first {
		second++
	}

	return first, second
}

// run returns n cards in sequence, all of suit unless suit is NoSuit
func (g *Generator) run(n int, suit deck.Suit) []deck.Card {
	low := deck.Values[g.rng.Intn(len(deck.Values)-n+1)]
	cards := make([]deck.Card, n)
	for i := range cards {
		value := low + deck.Value(i)
		if suit == deck.NoSuit {
			cards[i] = g.CardWithValue(value)
		} else {
			cards[i] = deck.NewCard(value, suit)
		}
	}

	return cards
}

// core returns the cards that make category
func (g *Generator) core(category handanalyzer.Category) ([]deck.Card, error) {
	switch category {
	case handanalyzer.HighCard:
		return []deck.Card{}, nil
	case handanalyzer.Pair:
		return g.cardsWithValue(g.Value(), 2), nil
	case handanalyzer.ThreeOfAKind:
		return g.cardsWithValue(g.Value(), 3), nil
	case handanalyzer.FourOfAKind:
		return g.cardsWithValue(g.Value(), 4), nil
	case handanalyzer.FiveOfAKind:
		return g.cardsWithValue(g.Value(), 5), nil
	case handanalyzer.TwoPair:
		first, second := g.twoValues()
		return append(g.cardsWithValue(first, 2), g.cardsWithValue(second, 2)...), nil
	case handanalyzer.FullHouse:
		three, two := g.twoValues()
		return append(g.cardsWithValue(three, 3), g.cardsWithValue(two, 2)...), nil
	case handanalyzer.Flush:
		return g.cardsWithSuit(g.Suit(), 5), nil
	case handanalyzer.BobtailFlush:
		return g.cardsWithSuit(g.Suit(), 4), nil
	case handanalyzer.Straight:
		return g.run(5, deck.NoSuit), nil
	case handanalyzer.BobtailStraight:
		return g.run(4, deck.NoSuit), nil
	case handanalyzer.StraightFlush:
		return g.run(5, g.Suit()), nil
	case handanalyzer.BigBobtail:
		return g.run(4, g.Suit()), nil
	case handanalyzer.LittleBobtail:
		return g.run(3, g.Suit()), nil
	default:
		return nil, fmt.Errorf("%w: cannot generate category %d", handanalyzer.ErrInvalidParameter, category)
	}
}

// Hand deals dealt cards that contain category
// Hands the ranker puts above category are thrown back, so the result ranks no higher than category.
func (g *Generator) Hand(category handanalyzer.Category, dealt int) ([]deck.Card, error) {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		core, err := g.core(category)
		if err != nil {
			return nil, err
		}

		if dealt < len(core) {
			return nil, handanalyzer.ParameterError{Name: "cards dealt", Min: len(core), Got: dealt}
		}

		hand := append(g.Cards(dealt-len(core)), core...)
		result, err := g.ranker.Rank(hand, nil)
		if err != nil {
			return nil, err
		}

		if result.Category() <= category {
			g.logger.WithFields(logrus.Fields{
				"category": category.String(),
				"attempts": attempt,
				"cards":    deck.CardsToString(hand),
			}).Trace("generated hand")
			return hand, nil
		}
	}

	g.logger.WithField("category", category.String()).Warn("gave up generating hand")
	return nil, fmt.Errorf("%w: %s after %d attempts", ErrAttemptsExhausted, category, MaxAttempts)
}

// Errant generates samples hands of category and returns those the ranker puts in another category
func (g *Generator) Errant(category handanalyzer.Category, dealt, samples int) ([]Errant, error) {
	errant := make([]Errant, 0)
	for i := 0; i < samples; i++ {
		hand, err := g.Hand(category, dealt)
		if err != nil {
			return nil, err
		}

		result, err := g.ranker.Rank(hand, nil)
		if err != nil {
			return nil, err
		}

		if result.Category() != category {
			g.logger.WithFields(logrus.Fields{
				"want":  category.String(),
				"got":   result.Category().String(),
				"cards": deck.CardsToString(hand),
			}).Warn("errant hand")
			errant = append(errant, Errant{Want: category, Cards: hand, Result: result})
		}
	}

	return errant, nil
}
