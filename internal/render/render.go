// Package render formats ranked hands for the console
package render

import (
	"fmt"
	"pokerrank/pkg/deck"
	"pokerrank/pkg/handanalyzer"
	"pokerrank/pkg/handgen"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Card formats a card of a result. A wild card shows what it stands for, i.e., !9♠ as 7♠
func Card(card handanalyzer.HandCard) string {
	if !card.IsTamed() {
		return card.Card.String()
	}

	as := card.TamedValue.String()
	if card.TamedSuit != deck.NoSuit {
		as += card.TamedSuit.String()
	}

	return "!" + card.Card.String() + " as " + as
}

func cards(hc []handanalyzer.HandCard) string {
	s := make([]string, len(hc))
	for i, card := range hc {
		s[i] = Card(card)
	}

	return strings.Join(s, " ")
}

func plain(hand []deck.Card) string {
	s := make([]string, len(hand))
	for i, card := range hand {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}

func values(v []deck.Value) string {
	s := make([]string, len(v))
	for i, value := range v {
		s[i] = value.String()
	}

	return strings.Join(s, " ")
}

// Describe returns a one line description of a result
// Rank cards and fill cards are separated by a slash.
func Describe(result *handanalyzer.Result) string {
	if len(result.FillCards) == 0 {
		return fmt.Sprintf("%s: %s", result.Signature, cards(result.RankCards))
	}

	if len(result.RankCards) == 0 {
		return fmt.Sprintf("%s: %s", result.Signature, cards(result.FillCards))
	}

	return fmt.Sprintf("%s: %s / %s", result.Signature, cards(result.RankCards), cards(result.FillCards))
}

// Result renders the hand and its ranking in a box
func Result(hand []deck.Card, result *handanalyzer.Result) string {
	lines := []string{
		"Hand:  " + plain(hand),
		"Rank:  " + cards(result.RankCards),
		"Fill:  " + cards(result.FillCards),
		"Order: " + values(result.Signature.Values),
	}

	title := pterm.LightGreen(result.Category().String())
	if result.Signature.IsRoyal() {
		title = pterm.LightYellow("Royal flush")
	}

	return pterm.DefaultBox.WithTitle(title).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}

// Profile renders every category a hand makes as a table, strongest first
func Profile(results []*handanalyzer.Result) (string, error) {
	data := pterm.TableData{{"Category", "Order", "Rank cards", "Fill cards"}}
	for _, result := range results {
		data = append(data, []string{
			result.Category().String(),
			values(result.Signature.Values),
			cards(result.RankCards),
			cards(result.FillCards),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Deal renders dealt hands and their rankings as a table
func Deal(hands [][]deck.Card, results []*handanalyzer.Result) (string, error) {
	if len(hands) != len(results) {
		return "", fmt.Errorf("have %d hands but %d results", len(hands), len(results))
	}

	data := pterm.TableData{{"#", "Hand", "Category", "Order"}}
	for i, result := range results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			plain(hands[i]),
			result.Category().String(),
			values(result.Signature.Values),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Errant renders generated hands that ranked in the wrong category
func Errant(errant []handgen.Errant) (string, error) {
	data := pterm.TableData{{"Wanted", "Got", "Hand", "Ranking"}}
	for _, e := range errant {
		data = append(data, []string{
			e.Want.String(),
			e.Result.Category().String(),
			deck.CardsToString(e.Cards),
			Describe(e.Result),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
