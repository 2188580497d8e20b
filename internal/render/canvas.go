package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var palette = map[Color]lipgloss.TerminalColor{
	Default: lipgloss.NoColor{},
	Black:   lipgloss.Color("0"),
	White:   lipgloss.Color("15"),
	Navy:    lipgloss.Color("4"),
	Green:   lipgloss.Color("10"),
	Red:     lipgloss.Color("9"),
	Cyan:    lipgloss.Color("14"),
	Yellow:  lipgloss.Color("11"),
}

// Cell is one glyph with its colors.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

var blank = Cell{Glyph: ' ', Fg: Default, Bg: Default}

// Canvas is an in-memory Renderer that renders to a styled string with lipgloss.
type Canvas struct {
	width, height int
	cells         []Cell
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.Cls()
	return c
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Cls() {
	c.fill(blank)
}

func (c *Canvas) ClsBg(bg Color) {
	c.fill(Cell{Glyph: ' ', Fg: Default, Bg: bg})
}

func (c *Canvas) fill(cell Cell) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

// Set writes one cell. Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, fg, bg Color, glyph rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

func (c *Canvas) PrintCentered(row int, text string) {
	c.PrintColorCentered(row, White, Black, text)
}

func (c *Canvas) PrintColorCentered(row int, fg, bg Color, text string) {
	x := centerColumn(c.width, text)
	for _, r := range text {
		c.Set(x, row, fg, bg, r)
		x++
	}
}

// Cell returns the cell at x,y, or a blank cell outside the canvas.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y*c.width+x]
}

// Row returns the glyphs of one row without styling.
func (c *Canvas) Row(y int) string {
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		b.WriteRune(c.Cell(x, y).Glyph)
	}
	return b.String()
}

// Plain renders every row without styling.
func (c *Canvas) Plain() string {
	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

// String renders the canvas with lipgloss, one style per run of equally
// colored cells.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		var run strings.Builder
		cur := c.Cell(0, y)
		for x := 0; x < c.width; x++ {
			cell := c.Cell(x, y)
			if cell.Fg != cur.Fg || cell.Bg != cur.Bg {
				b.WriteString(cellStyle(cur).Render(run.String()))
				run.Reset()
				cur = cell
			}
			run.WriteRune(cell.Glyph)
		}
		b.WriteString(cellStyle(cur).Render(run.String()))
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func cellStyle(cell Cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(palette[cell.Fg]).
		Background(palette[cell.Bg])
}
