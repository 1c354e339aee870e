package connections

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordplay/internal/core"
)

const (
	tileH    = 3
	tileGap  = 1
	maxTileW = 16
	minTileW = 8
)

var (
	styleTitle    = core.Fg(core.ColorBrightWhite).WithBold()
	styleTile     = core.Style{FG: core.ColorBlack, BG: core.ColorWhite, Bold: true}
	styleSelected = core.Style{FG: core.ColorBrightWhite, BG: core.ColorDarkGray, Bold: true}
	styleCursor   = core.Fg(core.ColorBrightYellow).WithBold()
	styleDim      = core.Fg(core.ColorGray)
	styleMessage  = core.Fg(core.ColorBrightWhite).WithBold()
	styleLost     = core.Fg(core.ColorRed).WithBold()
	styleWon      = core.Fg(core.ColorBrightGreen).WithBold()
)

// tierBG is a group band's background.
func tierBG(d Difficulty) core.Color {
	switch d {
	case Yellow:
		return core.ColorYellow
	case Green:
		return core.ColorGreen
	case Blue:
		return core.ColorBlue
	default:
		return core.ColorPurple
	}
}

type tileRect struct {
	rect core.Rect
	word string
}

// layout records tile positions from the last frame.
type layout struct {
	tiles []tileRect
}

func (l layout) hit(x, y int) (string, bool) {
	for _, t := range l.tiles {
		if t.rect.Contains(x, y) {
			return t.word, true
		}
	}
	return "", false
}

// Render draws the board: solved bands on top, remaining tiles below.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layout = layout{}

	st := g.CurrentState()
	b := dst.Bounds()

	if !st.Puzzle.Playable() {
		dst.DrawTextCentered(b, b.H/2, "No puzzle available today", styleDim)
		return
	}

	tileW := core.Min(maxTileW, (b.W-(GroupSize-1)*tileGap)/GroupSize)
	boardW := GroupSize*tileW + (GroupSize-1)*tileGap
	boardH := GroupCount * (tileH + tileGap)
	if tileW < minTileW || boardH+4 > b.H {
		dst.DrawTextCentered(b, b.H/2, "Window too small", core.Plain)
		dst.DrawTextCentered(b, b.H/2+1, "Please resize terminal", styleDim)
		return
	}
	x0 := b.X + (b.W-boardW)/2

	title := "Create four groups of four!"
	if st.Puzzle.Date != "" {
		title = st.Puzzle.Date + "  " + title
	}
	dst.DrawTextCentered(b, b.Y, title, styleTitle)

	y := b.Y + 2
	bands := st.SolvedGroups
	if st.Status != StatusPlaying {
		bands = st.AllGroups()
	}
	for _, grp := range bands {
		renderBand(dst, core.NewRect(x0, y, boardW, tileH), grp)
		y += tileH + tileGap
	}

	if st.Status == StatusPlaying {
		for i, w := range st.RemainingWords {
			col, row := i%GroupSize, i/GroupSize
			r := core.NewRect(x0+col*(tileW+tileGap), y+row*(tileH+tileGap), tileW, tileH)
			g.renderTile(dst, r, w, st.IsSelected(w), i == g.cursor)
			g.layout.tiles = append(g.layout.tiles, tileRect{rect: r, word: w})
		}
	}

	footY := b.Y + 2 + boardH
	dst.DrawTextCentered(b, footY, mistakesLine(st), styleDim)

	switch {
	case st.Message != "":
		dst.DrawTextCentered(b, footY+1, st.Message, styleMessage)
	case st.Status == StatusWon:
		dst.DrawTextCentered(b, footY+1, fmt.Sprintf("Solved with %d mistakes", st.MistakesMade()), styleWon)
	case st.Status == StatusLost:
		dst.DrawTextCentered(b, footY+1, "Out of mistakes. r to try again", styleLost)
	}
}

func renderBand(dst *core.Screen, r core.Rect, grp WordGroup) {
	style := core.Style{FG: core.ColorBlack, BG: tierBG(grp.Difficulty), Bold: true}
	dst.FillRect(r, ' ', style)
	dst.DrawTextCentered(r, r.Y, strings.ToUpper(grp.Category), style)
	words := style
	words.Bold = false
	dst.DrawTextCentered(r, r.Y+1, strings.Join(grp.Words, ", "), words)
}

func (g *Game) renderTile(dst *core.Screen, r core.Rect, word string, selected, cursor bool) {
	style := styleTile
	if selected {
		style = styleSelected
	}
	dst.FillRect(r, ' ', style)
	dst.DrawTextCentered(r, r.Y+1, word, style)
	if cursor {
		dst.DrawBox(r, styleCursor.WithBG(style.BG))
	}
}

func mistakesLine(st State) string {
	dots := strings.TrimSpace(strings.Repeat("● ", st.MistakesRemaining))
	return "Mistakes remaining: " + dots
}
