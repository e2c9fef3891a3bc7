package game

import (
	"fmt"
	"strings"
)

func addText(lines []string, row int, hpad int, text string) []string {
	for len(lines) <= row {
		lines = append(lines, "")
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
	return lines
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	bts := strings.Split(g.board.ToDisplayText(), "\n")
	width := 0
	for _, l := range bts {
		width = max(width, len(l))
	}
	for i := range bts {
		bts[i] += strings.Repeat(" ", width-len(bts[i]))
	}
	hpadding := 3
	vpadding := 1

	for pi, p := range g.players {
		bts = addText(bts, vpadding+pi, hpadding,
			p.stateString(g.playing == Playing && g.onturn == pi))
	}
	row := vpadding + len(g.players) + 1
	bts = addText(bts, row, hpadding, fmt.Sprintf("Deck: %d", g.deck.Remaining()))
	bts = addText(bts, row+1, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))
	if len(g.history) > 0 {
		last := g.history[len(g.history)-1]
		bts = addText(bts, row+2, hpadding,
			fmt.Sprintf("%s %s %d", last.Player(), last.ShortDescription(), last.Score()))
	}
	if g.playing == GameOver {
		bts = addText(bts, row+4, hpadding, "Game is over.")
	}
	return strings.Join(bts, "\n")
}
