package handanalyzer

import (
	"pokerrank/pkg/deck"
	"sort"
)

// HandCard is a card in the hand being ranked
// Index is the card's position in that hand. TamedValue and TamedSuit hold what
// a wild card stands for in one result and are NoValue and NoSuit until then.
// HandCard is a value: taming returns a copy, the original is never changed.
type HandCard struct {
	deck.Card
	Index      int
	TamedValue deck.Value
	TamedSuit  deck.Suit
}

func newHandCards(cards []deck.Card) []HandCard {
	handCards := make([]HandCard, len(cards))
	for i, card := range cards {
		handCards[i] = HandCard{Card: card, Index: i}
	}

	return handCards
}

// Tame returns a copy of the card standing in for value and suit
// A NoSuit suit leaves the suit unbound.
func (h HandCard) Tame(value deck.Value, suit deck.Suit) HandCard {
	h.TamedValue = value
	h.TamedSuit = suit
	return h
}

// IsTamed returns true if the card is standing in for another card
func (h HandCard) IsTamed() bool {
	return h.TamedValue != deck.NoValue
}

// EffectiveValue is the value the card plays as
func (h HandCard) EffectiveValue() deck.Value {
	if h.TamedValue != deck.NoValue {
		return h.TamedValue
	}

	return h.Value
}

// EffectiveSuit is the suit the card plays as
func (h HandCard) EffectiveSuit() deck.Suit {
	if h.TamedSuit != deck.NoSuit {
		return h.TamedSuit
	}

	return h.Suit
}

// String returns the card, plus what it is tamed as (i.e., 9♠ (as 7*))
func (h HandCard) String() string {
	if !h.IsTamed() {
		return h.Card.String()
	}

	suit := "*"
	if h.TamedSuit != deck.NoSuit {
		suit = h.TamedSuit.String()
	}

	return h.Card.String() + " (as " + h.TamedValue.String() + suit + ")"
}

// tameAll returns copies of cards standing in for value and suit
func tameAll(cards []HandCard, value deck.Value, suit deck.Suit) []HandCard {
	tamed := make([]HandCard, len(cards))
	for i, card := range cards {
		tamed[i] = card.Tame(value, suit)
	}

	return tamed
}

// sortByValueDesc returns a copy of cards, highest value first
// Equal values keep their hand order.
func sortByValueDesc(cards []HandCard) []HandCard {
	sorted := make([]HandCard, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	return sorted
}

// except returns the cards that are not in used, matched by hand index
func except(cards []HandCard, used []HandCard) []HandCard {
	skip := make(map[int]bool, len(used))
	for _, card := range used {
		skip[card.Index] = true
	}

	rest := make([]HandCard, 0, len(cards))
	for _, card := range cards {
		if !skip[card.Index] {
			rest = append(rest, card)
		}
	}

	return rest
}

// concat joins card slices into a new slice
func concat(slices ...[]HandCard) []HandCard {
	n := 0
	for _, s := range slices {
		n += len(s)
	}

	cards := make([]HandCard, 0, n)
	for _, s := range slices {
		cards = append(cards, s...)
	}

	return cards
}

func effectiveValues(cards []HandCard) []deck.Value {
	values := make([]deck.Value, len(cards))
	for i, card := range cards {
		values[i] = card.EffectiveValue()
	}

	return values
}
