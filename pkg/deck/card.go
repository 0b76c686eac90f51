package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card token cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Value is the face value of a card
type Value int

// value constants
// LowAce only exists so an Ace can play at the bottom of a straight
const (
	NoValue Value = iota
	LowAce
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	WildValue
)

// Values are the natural values of a standard deck, lowest first
var Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the display form of the value
func (v Value) String() string {
	switch v {
	case NoValue:
		return "-"
	case LowAce, Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case WildValue:
		return "*"
	default:
		return strconv.Itoa(int(v))
	}
}

// Token returns the value as it is written in a card token (i.e., 14 for an Ace)
func (v Value) Token() string {
	switch v {
	case WildValue:
		return "*"
	case NoValue:
		return "-"
	default:
		return strconv.Itoa(int(v))
	}
}

// Suit represents a card suit
type Suit int

// suit constants
const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
	WildSuit
)

// Suits are the natural suits of a standard deck
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	case WildSuit:
		return "*"
	default:
		return "-"
	}
}

// Token returns the suit as it is written in a card token
func (s Suit) Token() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	case WildSuit:
		return "*"
	default:
		return "-"
	}
}

// Card is an individual playing card
// Cards are values and are never modified once created
type Card struct {
	Value Value `json:"value"`
	Suit  Suit  `json:"suit"`
}

// Joker is a card whose value and suit are both wild
var Joker = Card{Value: WildValue, Suit: WildSuit}

// NewCard returns a card
func NewCard(value Value, suit Suit) Card {
	return Card{Value: value, Suit: suit}
}

func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// IsJoker returns true if both the value and the suit are wild
func (c Card) IsJoker() bool {
	return c.Value == WildValue && c.Suit == WildSuit
}

// IsWild returns true if the value or the suit is wild
func (c Card) IsWild() bool {
	return c.Value == WildValue || c.Suit == WildSuit
}

// Equal returns true if the cards are equal (matches suit and value)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Value == card.Value
}

// Matches returns true if the card is covered by a wild designation.
// A designation with a wild suit covers every suit of its value (i.e., 9* is "all nines"),
// and one with a wild value covers every value of its suit. A joker designation covers nothing.
func (c Card) Matches(designation Card) bool {
	if designation.IsJoker() {
		return false
	}

	valueOK := designation.Value == WildValue || designation.Value == c.Value
	suitOK := designation.Suit == WildSuit || designation.Suit == c.Suit
	return valueOK && suitOK
}

// AceLowValue returns the value where Ace is considered low instead of high
func (c Card) AceLowValue() Value {
	if c.Value == Ace {
		return LowAce
	}

	return c.Value
}

var cardRx = regexp.MustCompile(`(?i)^(\*|[2-9]|1[0-4]|[tjqka])(\*|[cdhs])?\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <value><suit> where value is 2-14 or one of T, J, Q, K, A
// and suit is one of c, d, h, s. Either part may be "*" to make it wild, and "*" or "**" is a joker.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var value Value
	switch strings.ToLower(match[1]) {
	case "*":
		value = WildValue
	case "t":
		value = Ten
	case "j":
		value = Jack
	case "q":
		value = Queen
	case "k":
		value = King
	case "a":
		value = Ace
	default:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}
		value = Value(n)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	case "*":
		suit = WildSuit
	default:
		// a lone "*" is a joker; anything else needs a suit
		if value != WildValue {
			return Card{}, fmt.Errorf("%w: %q is missing a suit", ErrInvalidCard, s)
		}
		suit = WildSuit
	}

	return Card{Value: value, Suit: suit}, nil
}

// CardFromString returns a Card from the string.
// It panics if the card cannot be parsed. Use ParseCard for user input.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return card
}

// ParseCards parses a comma separated list of card tokens
func ParseCards(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	tokens := strings.Split(s, ",")
	cards := make([]Card, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString will return a slice of cards
// It panics on a bad token, like CardFromString
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	if card.IsJoker() {
		return "**"
	}

	return card.Value.Token() + card.Suit.Token()
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
