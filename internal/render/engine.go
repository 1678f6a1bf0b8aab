package render

import (
	"strings"

	"procnoise/internal/field"
)

// HUDRows is the number of status lines below the field.
const HUDRows = 2

var sentinel = Cell{Ch: '\x00', Fg: Color{R: 255}, Bg: Color{B: 255}, Bold: true}

var (
	hudFg = Color{220, 220, 220}
	hudBg = Color{24, 24, 32}
)

// PixelSize returns how many field samples fit a terminal of termW x termH
// cells: one column per cell and two rows per cell above the HUD.
func PixelSize(termW, termH int) (int, int) {
	h := termH - HUDRows
	if h < 0 {
		h = 0
	}
	if termW < 0 {
		termW = 0
	}
	return termW, 2 * h
}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI output for one frame: the grid drawn with
// half-blocks, auto-ranged through ramp, followed by the status lines.
// Only cells that changed since the previous frame are emitted.
func (e *Engine) Render(g *field.Grid, ramp Ramp, status []string, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	st := g.Stats()
	viewRows := e.height - HUDRows
	for y := 0; y < viewRows; y++ {
		for x := 0; x < e.width; x++ {
			c := Cell{Ch: HalfBlock}
			if x < g.Width && 2*y < g.Height {
				c.Fg = ramp.At(st.Normalize(g.At(x, 2*y)))
			}
			if x < g.Width && 2*y+1 < g.Height {
				c.Bg = ramp.At(st.Normalize(g.At(x, 2*y+1)))
			}
			e.next[y][x] = c
		}
	}

	for i := 0; i < HUDRows; i++ {
		line := ""
		if i < len(status) {
			line = status[i]
		}
		e.writeHUDTextLine(viewRows+i, line)
	}

	// Diff current vs next, emit only changed cells
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

func (e *Engine) writeHUDTextLine(row int, text string) {
	if row < 0 || row >= e.height {
		return
	}
	runes := []rune(text)
	for x := 0; x < e.width; x++ {
		if x < len(runes) {
			e.next[row][x] = Cell{Ch: runes[x], Fg: hudFg, Bg: hudBg}
		} else {
			e.next[row][x] = Cell{Ch: ' ', Bg: hudBg}
		}
	}
}
