package handanalyzer

import (
	"math"
	"pokerrank/pkg/deck"
)

// noFillLimit lets the scoring hand size decide the fill count
const noFillLimit = math.MaxInt32

// kind looks for the best n cards of one value
// The highest plain value the wilds can bring up to n wins.
// At most maxFill fill cards are taken; the full house and two pair
// searches take theirs from the second group instead.
func (r *Ranker) kind(h *HandView, n int, maxFill int) (*Result, bool, error) {
	category, err := kindCategory(n)
	if err != nil {
		return nil, false, err
	}

	unbound := h.UnboundCount()
	kindValue := deck.NoValue
	if unbound >= n && !h.HasPlainCards() {
		// nothing to match, so the wilds are aces
		kindValue = deck.Ace
	}

	for _, vc := range h.valueGram {
		if vc.Count >= n-unbound && vc.Value > kindValue {
			kindValue = vc.Value
		}
	}

	if kindValue == deck.NoValue {
		return nil, false, nil
	}

	chosen := h.plainWithValue(kindValue)
	if len(chosen) > n {
		chosen = chosen[:n]
	}

	tamed := tameAll(h.unbound[:n-len(chosen)], kindValue, deck.NoSuit)
	rankCards := concat(chosen, tamed)

	fill, err := fillFrom(h, rankCards, min(r.options.HandSize-n, maxFill))
	if err != nil {
		return nil, false, err
	}

	return &Result{
		Signature: Signature{
			Category: category,
			Values:   append([]deck.Value{kindValue}, effectiveValues(fill)...),
		},
		RankCards: rankCards,
		FillCards: fill,
	}, true, nil
}

// twoPair is the best pair plus the best pair of what is left
func (r *Ranker) twoPair(h *HandView) (*Result, bool, error) {
	return r.composite(h, TwoPair, 2, 2, r.options.HandSize-4)
}

// fullHouse is the best three of a kind plus the best pair of what is left
func (r *Ranker) fullHouse(h *HandView) (*Result, bool, error) {
	return r.composite(h, FullHouse, 3, 2, r.options.HandSize-5)
}

func (r *Ranker) composite(h *HandView, category Category, first, second, maxFill int) (*Result, bool, error) {
	outer, ok, err := r.kind(h, first, 0)
	if err != nil || !ok {
		return nil, false, err
	}

	inner, ok, err := r.kind(h.without(outer.RankCards), second, maxFill)
	if err != nil || !ok {
		return nil, false, err
	}

	values := make([]deck.Value, 0, 1+len(inner.Signature.Values))
	values = append(values, outer.Signature.Values[0])
	values = append(values, inner.Signature.Values...)

	return &Result{
		Signature: Signature{Category: category, Values: values},
		RankCards: concat(outer.RankCards, inner.RankCards),
		FillCards: inner.FillCards,
	}, true, nil
}

// highCard always qualifies: wild cards play as aces, then plain cards highest first
func (r *Ranker) highCard(h *HandView) (*Result, bool, error) {
	fill, err := fillFrom(h, nil, r.options.HandSize)
	if err != nil {
		return nil, false, err
	}

	return &Result{
		Signature: Signature{Category: HighCard, Values: effectiveValues(fill)},
		RankCards: []HandCard{},
		FillCards: fill,
	}, true, nil
}
