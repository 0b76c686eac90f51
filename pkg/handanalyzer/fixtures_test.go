package handanalyzer

import (
	"pokerrank/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testHand struct {
	cards    string
	wilds    string
	size     int
	extended bool
	category Category
	values   []deck.Value
}

func vals(values ...deck.Value) []deck.Value {
	return values
}

// testHands is a catalog of hands with known rankings
var testHands = map[string]testHand{
	"h5_FiveOfAKind":   {cards: "5d,5d,5h,5s,**", category: FiveOfAKind, values: vals(5)},
	"h5_StraightFlush": {cards: "4s,5s,6s,7s,8s", category: StraightFlush, values: vals(8, 7, 6, 5, 4)},
	"h5_FourOfAKind":   {cards: "2c,3c,3d,3h,3s", category: FourOfAKind, values: vals(3, 2)},
	"h5_FullHouse":     {cards: "3c,3d,3h,7s,7h", category: FullHouse, values: vals(3, 7)},
	"h5_Flush":         {cards: "2h,5h,9h,11h,13h", category: Flush, values: vals(13, 11, 9, 5, 2)},
	"h5_Straight":      {cards: "10c,11d,12h,13s,14c", category: Straight, values: vals(14, 13, 12, 11, 10)},
	"h5_ThreeOfAKind":  {cards: "7c,7d,7h,2s,9c", category: ThreeOfAKind, values: vals(7, 9, 2)},
	"h5_TwoPair":       {cards: "5c,5d,6h,6d,3h", category: TwoPair, values: vals(6, 5, 3)},
	"h5_Pair":          {cards: "9d,9h,5c,14s,3s", category: Pair, values: vals(9, 14, 5, 3)},
	"h5_HighCard":      {cards: "2c,4d,6h,8s,14s", category: HighCard, values: vals(14, 8, 6, 4, 2)},

	"h5_Wheel":            {cards: "2c,3d,4s,5h,14s", category: Straight, values: vals(5, 4, 3, 2, deck.LowAce)},
	"h5_SteelWheel":       {cards: "2s,3s,4s,5s,14s", category: StraightFlush, values: vals(5, 4, 3, 2, deck.LowAce)},
	"h5_NearStraightFlush": {cards: "4s,5s,6s,7s,8h", category: Straight, values: vals(8, 7, 6, 5, 4)},
	"h5_WildFullHouse":    {cards: "7c,7d,9h,9s,**", category: FullHouse, values: vals(9, 7)},
	"h5_WildFlush":        {cards: "2h,5h,9h,11h,**", category: Flush, values: vals(14, 11, 9, 5, 2)},
	"h5_DeucesWild":       {cards: "6c,7d,9s,10h,2c", wilds: "2c", category: Straight, values: vals(10, 9, 8, 7, 6)},
	"h5_AllWild":          {cards: "**,**,**,**,**", category: FiveOfAKind, values: vals(14)},
	"h5_NinesWild":        {cards: "9c,9d,9h,4s,5s", wilds: "9*", category: StraightFlush, values: vals(8, 7, 6, 5, 4)},
	"h5_HeartsWild":       {cards: "2h,7h,13c,13d,4s", wilds: "*h", category: FourOfAKind, values: vals(13, 4)},
	"h5_HalfWildCard":     {cards: "9*,9c,9d,3h,4s", category: ThreeOfAKind, values: vals(9, 4, 3)},

	"h7_FullHouse":         {cards: "3c,3d,3h,7s,7h,7c,2d", category: FullHouse, values: vals(7, 3)},
	"h7_FullHouseAces":     {cards: "14c,2c,14d,5c,14h,2d,5h", category: FullHouse, values: vals(14, 5)},
	"h7_StraightFlush":     {cards: "2c,3c,4c,5c,6c,6d,6h", category: StraightFlush, values: vals(6, 5, 4, 3, 2)},
	"h7_RoyalFlush":        {cards: "10s,11s,12s,8d,13s,14s,9d", category: StraightFlush, values: vals(14, 13, 12, 11, 10)},
	"h7_Flush":             {cards: "2c,3c,4c,5c,9c,7d,8d", category: Flush, values: vals(9, 5, 4, 3, 2)},
	"h7_TwoPairBestKicker": {cards: "5c,5d,6h,6d,3h,3c,2s", category: TwoPair, values: vals(6, 5, 3)},

	"h8_Straight":           {cards: "12c,2d,4h,5s,6c,14d,7d,8h", category: Straight, values: vals(8, 7, 6, 5, 4)},
	"h8_FullHousePair":      {cards: "3c,3d,3h,4c,4d,4h,5c,5d", category: FullHouse, values: vals(4, 5)},
	"h8_FullHouseSecondSet": {cards: "7c,7d,7h,6c,6d,6h,5c,5d", category: FullHouse, values: vals(7, 6)},

	// both hands hold two flushes; the suit with the better cards wins
	"h10_Flush_A": {cards: "14h,13h,12h,11h,8h,14s,13s,12s,11s,9s", category: Flush, values: vals(14, 13, 12, 11, 9)},
	"h10_Flush_B": {cards: "14h,12h,7h,2h,13s,11s,9s,3s,5c,**", category: Flush, values: vals(14, 14, 12, 7, 2)},

	"h3_Pair":          {cards: "14c,14d,2s", size: 3, category: Pair, values: vals(14, 2)},
	"h3_ThreeOfAKind":  {cards: "9c,9d,9h", size: 3, category: ThreeOfAKind, values: vals(9)},
	"h3_HighCard":      {cards: "2c,3d,4h", size: 3, category: HighCard, values: vals(4, 3, 2)},
	"h3_LittleBobtail": {cards: "2c,14c,3c", size: 3, extended: true, category: LittleBobtail, values: vals(3, 2, deck.LowAce)},

	"h5_BigBobtail":      {cards: "5s,6s,7s,8s,13d", extended: true, category: BigBobtail, values: vals(8, 7, 6, 5, 13)},
	"h5_LittleBobtail":   {cards: "5c,6c,7c,9d,13h", extended: true, category: LittleBobtail, values: vals(7, 6, 5, 13, 9)},
	"h5_BobtailFlush":    {cards: "2h,5h,9h,11h,3c", extended: true, category: BobtailFlush, values: vals(11, 9, 5, 2, 3)},
	"h5_BobtailStraight": {cards: "5c,6d,7h,8s,13d", extended: true, category: BobtailStraight, values: vals(8, 7, 6, 5, 13)},
}

func (th testHand) ranker(t *testing.T) *Ranker {
	size := th.size
	if size == 0 {
		size = 5
	}

	r, err := NewRanker(nil, Options{HandSize: size, Extended: th.extended})
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return r
}

func (th testHand) deal() ([]deck.Card, []deck.Card) {
	return deck.CardsFromString(th.cards), deck.CardsFromString(th.wilds)
}

func TestRanker_testHands(t *testing.T) {
	for name, th := range testHands {
		t.Run(name, func(t *testing.T) {
			a := assert.New(t)
			cards, wilds := th.deal()
			result, err := th.ranker(t).Rank(cards, wilds)
			if !a.NoError(err) {
				return
			}

			a.Equal(th.category, result.Category())
			a.Equal(th.values, result.Signature.Values)
			assertPartition(t, th.ranker(t), cards, wilds, result)
		})
	}
}

// assertPartition checks that the result holds exactly the scoring hand, each card once,
// and that only wild cards are tamed
func assertPartition(t *testing.T, r *Ranker, cards, wilds []deck.Card, result *Result) {
	t.Helper()

	a := assert.New(t)
	all := result.Cards()
	a.Equal(r.Options().HandSize, len(all))

	seen := make(map[int]bool)
	for _, card := range all {
		a.False(seen[card.Index], "card %d used twice", card.Index)
		seen[card.Index] = true

		if !a.True(card.Index >= 0 && card.Index < len(cards)) {
			continue
		}

		a.Equal(cards[card.Index], card.Card)
		if card.IsTamed() {
			a.True(card.IsWild() || deck.IsWild(card.Card, wilds), "%s is tamed but not wild", card)
		}
	}
}
