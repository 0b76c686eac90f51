package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards  []Card `json:"cards"`
	jokers int
	seed   int64
	rng    *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return NewWithJokers(0)
}

// NewWithJokers returns a new unshuffled deck with the standard 52 cards plus n jokers
func NewWithJokers(n int) *Deck {
	d := &Deck{
		jokers: n,
		seed:   -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) size() int {
	return len(Suits)*len(Values) + d.jokers
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, d.size())
	for _, suit := range Suits {
		for _, value := range Values {
			cards = append(cards, Card{
				Value: value,
				Suit:  suit,
			})
		}
	}

	for i := 0; i < d.jokers; i++ {
		cards = append(cards, Joker)
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0 to seed from the clock.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != d.size() || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN draws n cards
func (d *Deck) DrawN(n int) (Hand, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	hand := make(Hand, n)
	copy(hand, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
