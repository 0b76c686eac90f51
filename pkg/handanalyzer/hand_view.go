package handanalyzer

import (
	"pokerrank/pkg/deck"
	"sort"
)

// ValueCount is one entry of a value histogram
type ValueCount struct {
	Value deck.Value
	Count int
}

// SuitCount is one entry of a suit histogram
type SuitCount struct {
	Suit  deck.Suit
	Count int
}

// HandView splits a hand into plain and unbound (wild) cards and counts the plain cards
// A HandView is never modified after it is built.
type HandView struct {
	plain     []HandCard
	unbound   []HandCard
	wilds     []deck.Card
	valueGram []ValueCount
	suitGram  []SuitCount
	values    map[deck.Value]int
	suits     map[deck.Suit]int
}

// NewHandView returns a view of cards where any card matching one of wilds is unbound
func NewHandView(cards []HandCard, wilds []deck.Card) *HandView {
	h := &HandView{
		plain:   make([]HandCard, 0, len(cards)),
		unbound: make([]HandCard, 0),
		wilds:   append([]deck.Card(nil), wilds...),
		values:  make(map[deck.Value]int),
		suits:   make(map[deck.Suit]int),
	}

	for _, card := range cards {
		if h.IsWild(card.Card) {
			h.unbound = append(h.unbound, card)
			continue
		}

		h.plain = append(h.plain, card)
		h.values[card.Value]++
		h.suits[card.Suit]++
	}

	for value, count := range h.values {
		h.valueGram = append(h.valueGram, ValueCount{Value: value, Count: count})
	}

	sort.Slice(h.valueGram, func(i, j int) bool {
		if h.valueGram[i].Count != h.valueGram[j].Count {
			return h.valueGram[i].Count > h.valueGram[j].Count
		}

		return h.valueGram[i].Value > h.valueGram[j].Value
	})

	for suit, count := range h.suits {
		h.suitGram = append(h.suitGram, SuitCount{Suit: suit, Count: count})
	}

	sort.Slice(h.suitGram, func(i, j int) bool {
		if h.suitGram[i].Count != h.suitGram[j].Count {
			return h.suitGram[i].Count > h.suitGram[j].Count
		}

		return h.suitGram[i].Suit < h.suitGram[j].Suit
	})

	return h
}

// IsWild returns true if the card is wild in this view
func (h *HandView) IsWild(card deck.Card) bool {
	return card.IsWild() || deck.IsWild(card, h.wilds)
}

// Plain returns the cards that are not wild, in hand order
func (h *HandView) Plain() []HandCard {
	return append([]HandCard(nil), h.plain...)
}

// Unbound returns the wild cards, in hand order
func (h *HandView) Unbound() []HandCard {
	return append([]HandCard(nil), h.unbound...)
}

// All returns the plain cards followed by the unbound cards
func (h *HandView) All() []HandCard {
	return concat(h.plain, h.unbound)
}

// WildCards returns the wild designations of the view
func (h *HandView) WildCards() []deck.Card {
	return append([]deck.Card(nil), h.wilds...)
}

// PlainCount is the number of cards that are not wild
func (h *HandView) PlainCount() int {
	return len(h.plain)
}

// UnboundCount is the number of wild cards
func (h *HandView) UnboundCount() int {
	return len(h.unbound)
}

// HasPlainCards returns true if at least one card is not wild
func (h *HandView) HasPlainCards() bool {
	return len(h.plain) > 0
}

// ValueGram returns the plain value counts, most common first and highest value on ties
func (h *HandView) ValueGram() []ValueCount {
	return append([]ValueCount(nil), h.valueGram...)
}

// SuitGram returns the plain suit counts, most common first and in suit order on ties
func (h *HandView) SuitGram() []SuitCount {
	return append([]SuitCount(nil), h.suitGram...)
}

// Count is the number of plain cards of value
func (h *HandView) Count(value deck.Value) int {
	return h.values[value]
}

// SuitCount is the number of plain cards of suit
func (h *HandView) SuitCount(suit deck.Suit) int {
	return h.suits[suit]
}

// MaxValueCount is the size of the largest group of plain cards sharing a value
func (h *HandView) MaxValueCount() int {
	if len(h.valueGram) == 0 {
		return 0
	}

	return h.valueGram[0].Count
}

// MaxSuitCount is the size of the largest group of plain cards sharing a suit
func (h *HandView) MaxSuitCount() int {
	if len(h.suitGram) == 0 {
		return 0
	}

	return h.suitGram[0].Count
}

// without returns a view of the cards not in used
func (h *HandView) without(used []HandCard) *HandView {
	return NewHandView(except(h.All(), used), h.wilds)
}

func (h *HandView) plainWithValue(value deck.Value) []HandCard {
	cards := make([]HandCard, 0, h.values[value])
	for _, card := range h.plain {
		if card.Value == value {
			cards = append(cards, card)
		}
	}

	return cards
}

func (h *HandView) plainWithSuit(suit deck.Suit) []HandCard {
	cards := make([]HandCard, 0, h.suits[suit])
	for _, card := range h.plain {
		if card.Suit == suit {
			cards = append(cards, card)
		}
	}

	return cards
}
