package handanalyzer

import (
	"pokerrank/pkg/deck"
)

// flush looks for n cards of one suit
// When more than one suit qualifies, the suit with the best cards wins and
// ties go to the first suit in deck.Suits.
func (r *Ranker) flush(h *HandView, n int) (*Result, bool, error) {
	category, err := flushCategory(n)
	if err != nil {
		return nil, false, err
	}

	unbound := h.UnboundCount()
	bestSuit := deck.NoSuit
	var bestCards []HandCard
	var bestValues []deck.Value

	for _, suit := range deck.Suits {
		if h.SuitCount(suit) < n-unbound {
			continue
		}

		cards := sortByValueDesc(h.plainWithSuit(suit))
		if len(cards) > n {
			cards = cards[:n]
		}

		values := make([]deck.Value, 0, n)
		for i := len(cards); i < n; i++ {
			values = append(values, deck.Ace)
		}

		for _, card := range cards {
			values = append(values, card.Value)
		}

		if bestSuit == deck.NoSuit || CompareValues(values, bestValues) > 0 {
			bestSuit = suit
			bestCards = cards
			bestValues = values
		}
	}

	if bestSuit == deck.NoSuit {
		return nil, false, nil
	}

	tamed := tameAll(h.unbound[:n-len(bestCards)], deck.Ace, bestSuit)
	rankCards := concat(tamed, bestCards)

	fill, err := fillFrom(h, rankCards, r.options.HandSize-n)
	if err != nil {
		return nil, false, err
	}

	return &Result{
		Signature: Signature{
			Category: category,
			Values:   append(bestValues, effectiveValues(fill)...),
		},
		RankCards: rankCards,
		FillCards: fill,
	}, true, nil
}
