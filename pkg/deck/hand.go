package deck

import (
	"math"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Suit != h[j].Suit {
		return h[i].Suit < h[j].Suit
	}

	return h[i].Value < h[j].Value
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard will discard the specified card
// If max is provided and > 0, then limit to max discards (useful for hands with duplicates)
func (h *Hand) Discard(card Card, max ...int) int {
	count := 0
	m := math.MaxInt32
	if len(max) == 1 && max[0] > 0 {
		m = max[0]
	}

	newHand := make(Hand, 0, len(*h))
	for _, c := range *h {
		if c.Equal(card) && count < m {
			count++
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return count
}

// CountWild returns how many cards in the hand are wild, either by
// their own value/suit or by one of the designations
func (h Hand) CountWild(designations []Card) int {
	n := 0
	for _, c := range h {
		if IsWild(c, designations) {
			n++
		}
	}

	return n
}

// IsWild returns true if the card is wild on its own or covered by a designation
func IsWild(card Card, designations []Card) bool {
	if card.IsWild() {
		return true
	}

	for _, d := range designations {
		if card.Matches(d) {
			return true
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
