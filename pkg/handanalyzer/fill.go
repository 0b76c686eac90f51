package handanalyzer

import (
	"fmt"
	"pokerrank/pkg/deck"
)

// takeFill takes count cards, wild cards first and then plain cards
// Both slices must already be in the order the cards should be taken.
func takeFill(count int, wild, plain []HandCard) ([]HandCard, error) {
	if count < 0 {
		return nil, ParameterError{Name: "fill count", Min: 0, Got: count}
	}

	fromWild := min(count, len(wild))
	fromPlain := min(count-fromWild, len(plain))
	if fromWild+fromPlain != count {
		return nil, fmt.Errorf("%w: need %d fill cards, have %d", ErrFillExhausted, count, len(wild)+len(plain))
	}

	return concat(wild[:fromWild], plain[:fromPlain]), nil
}

// fillFrom fills count slots from the cards of h that are not in used
// Leftover wild cards play as aces, leftover plain cards go highest first.
func fillFrom(h *HandView, used []HandCard, count int) ([]HandCard, error) {
	wild := tameAll(except(h.unbound, used), deck.Ace, deck.NoSuit)
	plain := sortByValueDesc(except(h.plain, used))
	return takeFill(count, wild, plain)
}
