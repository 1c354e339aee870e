package crossword

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-wordplay/internal/core"
)

// Cell footprints. Wide cells show clue numbers; compact cells are used
// when the grid would not fit otherwise.
const (
	wideCellW    = 4
	wideCellH    = 2
	compactCellW = 3
	compactCellH = 1

	headerHeight = 3 // title row, clue row, gap
	minPanelW    = 24
)

var (
	styleWhite     = core.Style{FG: core.ColorBlack, BG: core.ColorWhite}
	styleBlack     = core.Style{BG: core.ColorDarkGray}
	styleWord      = core.Style{FG: core.ColorBlack, BG: core.ColorBrightCyan}
	styleCursor    = core.Style{FG: core.ColorBlack, BG: core.ColorBrightYellow, Bold: true}
	styleTitle     = core.Fg(core.ColorBrightWhite).WithBold()
	styleClueHead  = core.Style{FG: core.ColorBlack, BG: core.ColorCyan, Bold: true}
	styleActive    = core.Fg(core.ColorBrightCyan).WithBold()
	styleCrossing  = core.Fg(core.ColorCyan)
	styleDim       = core.Fg(core.ColorGray)
	styleWarn      = core.Fg(core.ColorOrange).WithBold()
	styleSuccess   = core.Fg(core.ColorBrightGreen).WithBold()
	styleSectionHd = core.Fg(core.ColorBrightWhite).WithBold()
)

// statusFG colors a letter by its check/reveal mark.
func statusFG(s CellStatus) core.Color {
	switch s {
	case StatusCorrect:
		return core.ColorBlue
	case StatusIncorrect:
		return core.ColorRed
	case StatusRevealed:
		return core.ColorPurple
	default:
		return core.ColorBlack
	}
}

// clueLine is a clickable clue row in the side panel.
type clueLine struct {
	y    int
	x, w int
	ref  ClueRef
}

// layout records where the last frame drew things, for mouse hit-testing.
type layout struct {
	grid         core.Rect
	cellW, cellH int
	clues        []clueLine
}

// hit maps a screen cell to a selection action.
func (l layout) hit(x, y int) Action {
	if l.cellW > 0 && l.grid.Contains(x, y) {
		return SelectCell{Position: Position{
			Row: (y - l.grid.Y) / l.cellH,
			Col: (x - l.grid.X) / l.cellW,
		}}
	}
	for _, c := range l.clues {
		if y == c.y && x >= c.x && x < c.x+c.w {
			return SelectClue{Number: c.ref.Number, Direction: c.ref.Direction}
		}
	}
	return nil
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layout = layout{}

	st := g.CurrentState()
	bounds := dst.Bounds()

	if st.Cells.Rows() == 0 {
		dst.DrawTextCentered(bounds, bounds.H/2, "No crossword loaded", styleDim)
		return
	}

	cellW, cellH := wideCellW, wideCellH
	if st.Cells.Cols()*cellW+minPanelW > bounds.W || st.Cells.Rows()*cellH+headerHeight+2 > bounds.H {
		cellW, cellH = compactCellW, compactCellH
	}
	gridW, gridH := st.Cells.Cols()*cellW, st.Cells.Rows()*cellH
	if gridW > bounds.W || gridH+headerHeight+2 > bounds.H {
		g.renderTooSmall(dst)
		return
	}

	header, body := bounds.SplitTop(headerHeight)
	body.H-- // footer row
	g.renderHeader(dst, header, st)

	gridArea, panel := body.SplitLeft(gridW, 2)
	gridArea = core.NewRect(gridArea.X, gridArea.Y, gridW, gridH)
	g.layout.grid = gridArea
	g.layout.cellW, g.layout.cellH = cellW, cellH
	renderGrid(dst, gridArea, cellW, cellH, st)

	if panel.W >= minPanelW/2 {
		g.layout.clues = renderClues(dst, panel, st)
	}

	g.renderFooter(dst, core.NewRect(bounds.X, body.Bottom(), bounds.W, 1), st)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	b := dst.Bounds()
	dst.DrawTextCentered(b, b.H/2, "Window too small", core.Plain)
	dst.DrawTextCentered(b, b.H/2+1, "Please resize terminal", styleDim)
}

// renderHeader draws the title, clock and current clue.
func (g *Game) renderHeader(dst *core.Screen, r core.Rect, st State) {
	title := st.Puzzle.Title
	if title == "" {
		title = st.Puzzle.ID
	}
	if st.Puzzle.Author != "" {
		title += " by " + st.Puzzle.Author
	}

	clock := FormatTime(st.Timer.ElapsedSeconds)
	switch {
	case st.IsRevealed:
		clock = "LOCKED " + clock
	case st.Timer.Paused():
		clock = "PAUSED " + clock
	}
	dst.DrawTextStyled(r.Right()-len(clock), r.Y, clock, styleTitle)
	dst.DrawTextClipped(r.X, r.Y, r.W-len(clock)-1, title, styleTitle)

	line := ""
	if clue, ok := st.ActiveClue(); ok {
		line = fmt.Sprintf(" %d %s  %s ", clue.Number, capitalize(st.Direction.String()), clue.Text)
	}
	if line != "" {
		dst.DrawTextClipped(r.X, r.Y+1, r.W, line, styleClueHead)
	}
}

// renderGrid draws every cell, highlighting the active word and cursor.
func renderGrid(dst *core.Screen, r core.Rect, cellW, cellH int, st State) {
	inWord := make(map[Position]bool)
	for _, p := range st.ActiveWord() {
		inWord[p] = true
	}

	for _, row := range st.Cells {
		for _, c := range row {
			p := Position{Row: c.Row, Col: c.Col}
			cellRect := core.NewRect(r.X+c.Col*cellW, r.Y+c.Row*cellH, cellW, cellH)

			if c.IsBlack {
				dst.FillRect(cellRect, ' ', styleBlack)
				continue
			}

			bg := styleWhite
			switch {
			case p == st.Selected:
				bg = styleCursor
			case inWord[p]:
				bg = styleWord
			}
			dst.FillRect(cellRect, ' ', bg)

			if cellH > 1 && c.Number != 0 {
				dst.DrawTextClipped(cellRect.X, cellRect.Y, cellW, strconv.Itoa(c.Number), bg.WithBold())
			}
			if c.Value != "" {
				letter := bg
				letter.FG = statusFG(c.Status)
				letter.Bold = true
				dst.DrawTextStyled(cellRect.X+cellW/2, cellRect.Bottom()-1, c.Value, letter)
				if c.Status == StatusIncorrect && cellW > 2 {
					dst.SetStyled(cellRect.Right()-1, cellRect.Bottom()-1, '/', letter)
				}
			}
		}
	}
}

// renderClues draws the across and down lists, scrolling to keep the active
// clue visible. It returns the clickable rows.
func renderClues(dst *core.Screen, r core.Rect, st State) []clueLine {
	type row struct {
		text  string
		style core.Style
		ref   *ClueRef
	}

	active, hasActive := st.ActiveClue()
	crossing := 0
	if cell, ok := st.SelectedCell(); ok {
		crossing = cell.Clues.Get(st.Direction.Other())
	}

	var rows []row
	activeIdx := 0
	for _, d := range []Direction{Across, Down} {
		if len(rows) > 0 {
			rows = append(rows, row{})
		}
		rows = append(rows, row{text: capitalize(d.String()), style: styleSectionHd})
		for _, clue := range st.Puzzle.Clues.List(d) {
			ref := ClueRef{Number: clue.Number, Direction: d}
			style := core.Plain
			switch {
			case hasActive && d == st.Direction && clue.Number == active.Number:
				style = styleActive
				activeIdx = len(rows)
			case d != st.Direction && clue.Number == crossing:
				style = styleCrossing
			}
			rows = append(rows, row{
				text:  fmt.Sprintf("%3d %s", clue.Number, clue.Text),
				style: style,
				ref:   &ref,
			})
		}
	}

	offset := 0
	if activeIdx >= r.H {
		offset = activeIdx - r.H/2
	}

	var lines []clueLine
	for i := 0; i < r.H && offset+i < len(rows); i++ {
		rw := rows[offset+i]
		y := r.Y + i
		dst.DrawTextClipped(r.X, y, r.W, rw.text, rw.style)
		if rw.ref != nil {
			lines = append(lines, clueLine{y: y, x: r.X, w: r.W, ref: *rw.ref})
		}
	}
	return lines
}

// renderFooter draws the completion and lock prompts.
func (g *Game) renderFooter(dst *core.Screen, bounds core.Rect, st State) {
	y := bounds.Y

	switch {
	case st.ShowCompletion() && st.IsRevealed:
		dst.DrawTextClipped(bounds.X, y, bounds.W, "Puzzle revealed. Enter to dismiss", styleWarn)
	case st.ShowCompletion():
		msg := fmt.Sprintf("Solved in %s! Enter to dismiss", FormatTime(st.Timer.ElapsedSeconds))
		dst.DrawTextClipped(bounds.X, y, bounds.W, msg, styleSuccess)
	case st.ShowIncorrectPrompt():
		dst.DrawTextClipped(bounds.X, y, bounds.W,
			"The grid is full but something is wrong. Enter to keep trying", styleWarn)
	case st.IsRevealed && g.allowUnlock:
		dst.DrawTextClipped(bounds.X, y, bounds.W, "Revealed and locked. ctrl+u unlocks", styleDim)
	case st.IsRevealed:
		dst.DrawTextClipped(bounds.X, y, bounds.W, "Revealed and locked", styleDim)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
