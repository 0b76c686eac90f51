package handanalyzer

import (
	"fmt"
	"strings"
)

// Category is a poker hand category, i.e., full house
// Categories are ordered weakest to strongest
type Category int

// Constants for category
const (
	NoCategory Category = iota
	HighCard
	Pair
	BobtailStraight // four cards in sequence
	BobtailFlush    // four cards of one suit
	TwoPair
	LittleBobtail // three-card straight flush
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	BigBobtail // four-card straight flush
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// standardCategories are ranked by every ranker, strongest first
var standardCategories = []Category{
	FiveOfAKind,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
	HighCard,
}

// allCategories adds the bobtail tier at its strength, strongest first
var allCategories = []Category{
	FiveOfAKind,
	StraightFlush,
	FourOfAKind,
	BigBobtail,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	LittleBobtail,
	TwoPair,
	BobtailFlush,
	BobtailStraight,
	Pair,
	HighCard,
}

// Categories returns the categories a ranker tries, strongest first
func Categories(extended bool) []Category {
	src := standardCategories
	if extended {
		src = allCategories
	}

	categories := make([]Category, len(src))
	copy(categories, src)
	return categories
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case NoCategory:
		return "No category"
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case BobtailStraight:
		return "Bobtail straight"
	case BobtailFlush:
		return "Bobtail flush"
	case TwoPair:
		return "Two pair"
	case LittleBobtail:
		return "Little bobtail"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case BigBobtail:
		return "Big bobtail"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Slug returns the name used for the category on the command line and in config files
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(c.String()), " ", "-")
}

// IsExtended returns true for the bobtail categories
func (c Category) IsExtended() bool {
	switch c {
	case BobtailStraight, BobtailFlush, LittleBobtail, BigBobtail:
		return true
	default:
		return false
	}
}

// IsValid returns true if c names a real category
func (c Category) IsValid() bool {
	return c >= HighCard && c <= FiveOfAKind
}

// cardsNeeded is the number of rank-forming cards the category needs
// A category can never be made in a scoring hand smaller than this
func (c Category) cardsNeeded() int {
	switch c {
	case HighCard:
		return 0
	case Pair:
		return 2
	case LittleBobtail, ThreeOfAKind:
		return 3
	case BobtailStraight, BobtailFlush, TwoPair, BigBobtail, FourOfAKind:
		return 4
	default:
		return 5
	}
}

// ParseCategory returns the category for a slug (i.e., full-house) or display name (i.e., Full house)
func ParseCategory(s string) (Category, error) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	for _, c := range allCategories {
		if c.Slug() == want {
			return c, nil
		}
	}

	return NoCategory, fmt.Errorf("%w: unknown category %q", ErrInvalidParameter, s)
}

func kindCategory(n int) (Category, error) {
	switch n {
	case 2:
		return Pair, nil
	case 3:
		return ThreeOfAKind, nil
	case 4:
		return FourOfAKind, nil
	case 5:
		return FiveOfAKind, nil
	default:
		return NoCategory, ParameterError{Name: "n-of-a-kind", Min: 2, Max: 5, Got: n}
	}
}

func flushCategory(n int) (Category, error) {
	switch n {
	case 4:
		return BobtailFlush, nil
	case 5:
		return Flush, nil
	default:
		return NoCategory, ParameterError{Name: "flush size", Min: 4, Max: 5, Got: n}
	}
}

func straightCategory(n int, suited bool) (Category, error) {
	switch {
	case n == 3 && suited:
		return LittleBobtail, nil
	case n == 4 && suited:
		return BigBobtail, nil
	case n == 5 && suited:
		return StraightFlush, nil
	case n == 4:
		return BobtailStraight, nil
	case n == 5:
		return Straight, nil
	case suited:
		return NoCategory, ParameterError{Name: "straight flush size", Min: 3, Max: 5, Got: n}
	default:
		return NoCategory, ParameterError{Name: "straight size", Min: 4, Max: 5, Got: n}
	}
}
