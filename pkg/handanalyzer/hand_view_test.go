package handanalyzer

import (
	"pokerrank/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newView(cards string, wilds string) *HandView {
	return NewHandView(newHandCards(deck.CardsFromString(cards)), deck.CardsFromString(wilds))
}

func TestNewHandView(t *testing.T) {
	a := assert.New(t)

	h := newView("9c,2h,9d,**,2s,13h,9h", "")
	a.Equal(6, h.PlainCount())
	a.Equal(1, h.UnboundCount())
	a.True(h.HasPlainCards())
	a.Equal(3, h.Count(deck.Nine))
	a.Equal(0, h.Count(deck.Ace))
	a.Equal(3, h.SuitCount(deck.Hearts))
	a.Equal(3, h.MaxValueCount())
	a.Equal(3, h.MaxSuitCount())

	a.Equal([]ValueCount{
		{Value: deck.Nine, Count: 3},
		{Value: deck.Two, Count: 2},
		{Value: deck.King, Count: 1},
	}, h.ValueGram())

	a.Equal([]SuitCount{
		{Suit: deck.Hearts, Count: 3},
		{Suit: deck.Clubs, Count: 1},
		{Suit: deck.Diamonds, Count: 1},
		{Suit: deck.Spades, Count: 1},
	}, h.SuitGram())

	all := h.All()
	a.Len(all, 7)
	a.Equal(3, all[6].Index)
	a.True(all[6].IsJoker())
}

func TestHandView_designations(t *testing.T) {
	a := assert.New(t)

	h := newView("9c,9d,2h,3s", "9*")
	a.Equal(2, h.UnboundCount())
	a.True(h.IsWild(deck.CardFromString("9s")))
	a.False(h.IsWild(deck.CardFromString("8s")))

	h = newView("9c,9d,2h,3s", "*h")
	a.Equal(1, h.UnboundCount())
	a.Equal(2, h.Unbound()[0].Index)

	h = newView("9c,9d,2h,3s", "9d,3s")
	a.Equal(2, h.UnboundCount())
	a.Equal([]deck.Card{deck.CardFromString("9d"), deck.CardFromString("3s")}, h.WildCards())

	h = newView("**,**", "")
	a.False(h.HasPlainCards())
	a.Equal(0, h.MaxValueCount())
	a.Equal(0, h.MaxSuitCount())
	a.Empty(h.ValueGram())
}

func TestHandView_without(t *testing.T) {
	a := assert.New(t)

	h := newView("9c,9d,2h,**,3s", "")
	rest := h.without(h.plainWithValue(deck.Nine))
	a.Equal(2, rest.PlainCount())
	a.Equal(1, rest.UnboundCount())
	a.Equal(0, rest.Count(deck.Nine))

	// the original view is untouched
	a.Equal(2, h.Count(deck.Nine))
	a.Equal(4, h.PlainCount())
}

func TestHandView_accessorsReturnCopies(t *testing.T) {
	a := assert.New(t)

	h := newView("9c,**", "")
	h.Plain()[0] = HandCard{}
	h.Unbound()[0] = HandCard{}
	a.Equal(deck.Nine, h.Plain()[0].Value)
	a.True(h.Unbound()[0].IsJoker())
}

func TestHandCard(t *testing.T) {
	a := assert.New(t)

	card := HandCard{Card: deck.Joker, Index: 2}
	tamed := card.Tame(deck.Seven, deck.Spades)

	a.False(card.IsTamed())
	a.Equal("**", card.String())
	a.True(tamed.IsTamed())
	a.Equal(deck.Seven, tamed.EffectiveValue())
	a.Equal(deck.Spades, tamed.EffectiveSuit())
	a.Equal("** (as 7♠)", tamed.String())

	plain := HandCard{Card: deck.CardFromString("9h")}
	a.Equal(deck.Nine, plain.EffectiveValue())
	a.Equal(deck.Hearts, plain.EffectiveSuit())
}

func Test_takeFill(t *testing.T) {
	a := assert.New(t)

	wild := tameAll([]HandCard{{Card: deck.Joker, Index: 0}}, deck.Ace, deck.NoSuit)
	plain := sortByValueDesc(newHandCards(deck.CardsFromString("2c,9d,5h")))

	fill, err := takeFill(3, wild, plain)
	a.NoError(err)
	a.Equal(vals(14, 9, 5), effectiveValues(fill))

	fill, err = takeFill(0, wild, plain)
	a.NoError(err)
	a.Empty(fill)

	_, err = takeFill(5, wild, plain)
	a.ErrorIs(err, ErrFillExhausted)

	_, err = takeFill(-1, wild, plain)
	a.ErrorIs(err, ErrInvalidParameter)
}
