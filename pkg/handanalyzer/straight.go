package handanalyzer

import (
	"fmt"
	"pokerrank/pkg/deck"
)

// straight looks for n cards in sequence, all of one suit if suited is set
// Windows are tried from ace-high down. In the lowest window an ace plays low.
func (r *Ranker) straight(h *HandView, n int, suited bool) (*Result, bool, error) {
	category, err := straightCategory(n, suited)
	if err != nil {
		return nil, false, err
	}

	need := n - h.UnboundCount()
	for high := deck.Ace; high >= deck.Value(n); high-- {
		low := high - deck.Value(n-1)
		groups := windowGroups(h.plain, low, high)
		if len(groups) < need {
			continue
		}

		suit := deck.NoSuit
		if suited {
			if suit = straightSuit(groups, low, high, need); suit == deck.NoSuit {
				continue
			}
		}

		return r.buildStraight(h, category, low, high, groups, suit)
	}

	return nil, false, nil
}

// windowGroups returns the plain cards whose value is in [low, high], keyed by value
func windowGroups(plain []HandCard, low, high deck.Value) map[deck.Value][]HandCard {
	groups := make(map[deck.Value][]HandCard)
	for _, card := range plain {
		value := card.Value
		if low == deck.LowAce {
			value = card.AceLowValue()
		}

		if value >= low && value <= high {
			groups[value] = append(groups[value], card)
		}
	}

	return groups
}

// straightSuit returns the suit covering the most window values, if it covers at least need
func straightSuit(groups map[deck.Value][]HandCard, low, high deck.Value, need int) deck.Suit {
	best := deck.NoSuit
	bestCount := -1
	for _, suit := range deck.Suits {
		count := 0
		for value := low; value <= high; value++ {
			if _, ok := cardWithSuit(groups[value], suit); ok {
				count++
			}
		}

		if count >= need && count > bestCount {
			best = suit
			bestCount = count
		}
	}

	return best
}

func cardWithSuit(cards []HandCard, suit deck.Suit) (HandCard, bool) {
	for _, card := range cards {
		if suit == deck.NoSuit || card.Suit == suit {
			return card, true
		}
	}

	return HandCard{}, false
}

func (r *Ranker) buildStraight(h *HandView, category Category, low, high deck.Value, groups map[deck.Value][]HandCard, suit deck.Suit) (*Result, bool, error) {
	wilds := h.Unbound()
	rankCards := make([]HandCard, 0, int(high-low)+1)

	for value := low; value <= high; value++ {
		if card, ok := cardWithSuit(groups[value], suit); ok {
			rankCards = append(rankCards, card)
			continue
		}

		if len(wilds) == 0 {
			return nil, false, fmt.Errorf("%w: no wild card left for %s in a %s", ErrInconsistentState, value, category)
		}

		i := preferredWild(wilds, value)
		rankCards = append(rankCards, wilds[i].Tame(value, suit))
		wilds = append(wilds[:i], wilds[i+1:]...)
	}

	fill, err := fillFrom(h, rankCards, r.options.HandSize-len(rankCards))
	if err != nil {
		return nil, false, err
	}

	values := make([]deck.Value, 0, r.options.HandSize)
	for value := high; value >= low; value-- {
		values = append(values, value)
	}

	return &Result{
		Signature: Signature{
			Category: category,
			Values:   append(values, effectiveValues(fill)...),
		},
		RankCards: rankCards,
		FillCards: fill,
	}, true, nil
}

// preferredWild returns the index of a wild card whose own value is value, or 0
func preferredWild(wilds []HandCard, value deck.Value) int {
	for i, card := range wilds {
		if card.Value == value || (value == deck.LowAce && card.Value == deck.Ace) {
			return i
		}
	}

	return 0
}
