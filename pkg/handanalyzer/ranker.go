package handanalyzer

import (
	"fmt"
	"pokerrank/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Options configures a Ranker
type Options struct {
	// HandSize is the number of cards in the scoring hand. Default: 5
	HandSize int `yaml:"handSize"`

	// Extended adds the bobtail categories
	Extended bool `yaml:"extended"`
}

// DefaultOptions returns the options for standard five-card poker
func DefaultOptions() Options {
	return Options{
		HandSize: 5,
		Extended: false,
	}
}

// Result is the best hand found for a set of cards
// RankCards form the category and FillCards complete the scoring hand.
type Result struct {
	Signature Signature
	RankCards []HandCard
	FillCards []HandCard
}

// Category is the category of the result
func (r *Result) Category() Category {
	return r.Signature.Category
}

// Cards returns the rank cards followed by the fill cards
func (r *Result) Cards() []HandCard {
	return concat(r.RankCards, r.FillCards)
}

// Compare compares the signatures of two results
func (r *Result) Compare(other *Result) int {
	return r.Signature.Compare(other.Signature)
}

func (r *Result) String() string {
	return r.Signature.String()
}

// Ranker finds the best category a hand makes
// A Ranker holds no state between calls and is safe for concurrent use.
type Ranker struct {
	logger  logrus.FieldLogger
	options Options
	order   []Category
}

// NewRanker returns a ranker for the options
func NewRanker(logger logrus.FieldLogger, opts Options) (*Ranker, error) {
	if opts.HandSize < 1 {
		return nil, ParameterError{Name: "hand size", Min: 1, Got: opts.HandSize}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	order := make([]Category, 0, len(allCategories))
	for _, category := range Categories(opts.Extended) {
		if category.cardsNeeded() <= opts.HandSize {
			order = append(order, category)
		}
	}

	return &Ranker{
		logger:  logger.WithField("handSize", opts.HandSize),
		options: opts,
		order:   order,
	}, nil
}

// Rank is a shortcut for ranking cards with a standard ranker of size
func Rank(size int, cards []deck.Card, wilds ...deck.Card) (*Result, error) {
	r, err := NewRanker(nil, Options{HandSize: size})
	if err != nil {
		return nil, err
	}

	return r.Rank(cards, wilds)
}

// Options returns the options of the ranker
func (r *Ranker) Options() Options {
	return r.options
}

// Categories returns the categories the ranker tries, strongest first
func (r *Ranker) Categories() []Category {
	return append([]Category(nil), r.order...)
}

// Rank returns the strongest category the cards make
// Any card matching one of wilds is wild, as is any joker.
func (r *Ranker) Rank(cards []deck.Card, wilds []deck.Card) (*Result, error) {
	h, err := r.newView(cards, wilds)
	if err != nil {
		return nil, err
	}

	for _, category := range r.order {
		result, ok, err := r.detect(category, h)
		if err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"category": category.String(),
				"cards":    deck.CardsToString(cards),
			}).Error("could not rank hand")
			return nil, err
		}

		if ok {
			r.logger.WithFields(logrus.Fields{
				"category": category.String(),
				"values":   result.Signature.Values,
			}).Debug("ranked hand")
			return result, nil
		}
	}

	r.logger.WithField("cards", deck.CardsToString(cards)).Error("no category matched")
	return nil, ErrUnreachableNoMatch
}

// RankAs returns the best hand of category the cards make, if they make one
// The category does not need to be one the ranker tries.
func (r *Ranker) RankAs(cards []deck.Card, wilds []deck.Card, category Category) (*Result, bool, error) {
	if !category.IsValid() {
		return nil, false, ParameterError{Name: "category", Min: int(HighCard), Max: int(FiveOfAKind), Got: int(category)}
	}

	h, err := r.newView(cards, wilds)
	if err != nil {
		return nil, false, err
	}

	return r.detect(category, h)
}

// WouldQualify returns true if the cards make category
func (r *Ranker) WouldQualify(cards []deck.Card, wilds []deck.Card, category Category) (bool, error) {
	_, ok, err := r.RankAs(cards, wilds, category)
	return ok, err
}

// Profile returns the best hand of every category the ranker tries that the cards make, strongest first
func (r *Ranker) Profile(cards []deck.Card, wilds []deck.Card) ([]*Result, error) {
	h, err := r.newView(cards, wilds)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(r.order))
	for _, category := range r.order {
		result, ok, err := r.detect(category, h)
		if err != nil {
			return nil, err
		}

		if ok {
			results = append(results, result)
		}
	}

	return results, nil
}

func (r *Ranker) newView(cards []deck.Card, wilds []deck.Card) (*HandView, error) {
	if len(cards) < r.options.HandSize {
		return nil, InsufficientCardsError{Need: r.options.HandSize, Got: len(cards)}
	}

	for i, card := range cards {
		if card.Value == deck.NoValue || card.Suit == deck.NoSuit {
			return nil, fmt.Errorf("%w: card %d has no value or suit", deck.ErrInvalidCard, i)
		}
	}

	return NewHandView(newHandCards(cards), wilds), nil
}

// detect runs the search for one category
func (r *Ranker) detect(category Category, h *HandView) (*Result, bool, error) {
	if category.cardsNeeded() > r.options.HandSize {
		return nil, false, nil
	}

	switch category {
	case FiveOfAKind:
		return r.kind(h, 5, noFillLimit)
	case StraightFlush:
		return r.straight(h, 5, true)
	case FourOfAKind:
		return r.kind(h, 4, noFillLimit)
	case BigBobtail:
		return r.straight(h, 4, true)
	case FullHouse:
		return r.fullHouse(h)
	case Flush:
		return r.flush(h, 5)
	case Straight:
		return r.straight(h, 5, false)
	case ThreeOfAKind:
		return r.kind(h, 3, noFillLimit)
	case LittleBobtail:
		return r.straight(h, 3, true)
	case TwoPair:
		return r.twoPair(h)
	case BobtailFlush:
		return r.flush(h, 4)
	case BobtailStraight:
		return r.straight(h, 4, false)
	case Pair:
		return r.kind(h, 2, noFillLimit)
	case HighCard:
		return r.highCard(h)
	}

	return nil, false, ParameterError{Name: "category", Min: int(HighCard), Max: int(FiveOfAKind), Got: int(category)}
}
