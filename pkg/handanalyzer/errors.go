package handanalyzer

import (
	"errors"
	"fmt"
)

// ErrInsufficientCards is returned when the hand is smaller than the scoring hand
var ErrInsufficientCards = errors.New("not enough cards in hand for ranking")

// ErrInvalidParameter is returned when a size or category is out of range
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrFillExhausted is returned when there are not enough cards left to fill the scoring hand.
// It means a category qualified without the cards to back it up.
var ErrFillExhausted = errors.New("could not find enough cards to complete a hand")

// ErrUnreachableNoMatch is returned when not even a high card could be made
var ErrUnreachableNoMatch = errors.New("no category matched the hand")

// ErrInconsistentState is returned when a qualifying straight runs out of wild cards
var ErrInconsistentState = errors.New("inconsistent ranking state")

// InsufficientCardsError is an error on the number of cards in the hand
type InsufficientCardsError struct {
	Need int
	Got  int
}

func (i InsufficientCardsError) Error() string {
	return fmt.Sprintf("need at least %d cards to rank a hand, got %d", i.Need, i.Got)
}

// Unwrap allows errors.Is(err, ErrInsufficientCards)
func (i InsufficientCardsError) Unwrap() error {
	return ErrInsufficientCards
}

// ParameterError is an error on a size or category outside its supported range
// A Max of 0 means there is no upper bound
type ParameterError struct {
	Name string
	Min  int
	Max  int
	Got  int
}

func (p ParameterError) Error() string {
	if p.Max == 0 {
		return fmt.Sprintf("expected %s of at least %d, got %d", p.Name, p.Min, p.Got)
	}

	return fmt.Sprintf("expected %s between %d and %d, got %d", p.Name, p.Min, p.Max, p.Got)
}

// Unwrap allows errors.Is(err, ErrInvalidParameter)
func (p ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
