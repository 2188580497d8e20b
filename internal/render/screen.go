package render

import "github.com/gdamore/tcell/v2"

var tcellPalette = map[Color]tcell.Color{
	Default: tcell.ColorDefault,
	Black:   tcell.ColorBlack,
	White:   tcell.ColorWhite,
	Navy:    tcell.ColorNavy,
	Green:   tcell.ColorLime,
	Red:     tcell.ColorRed,
	Cyan:    tcell.ColorAqua,
	Yellow:  tcell.ColorYellow,
}

// Screen adapts a tcell screen to Renderer. Drawing is limited to the game
// grid in the top-left corner of the terminal.
type Screen struct {
	screen        tcell.Screen
	width, height int
}

func NewScreen(s tcell.Screen, width, height int) *Screen {
	return &Screen{screen: s, width: width, height: height}
}

func (s *Screen) Cls() {
	s.screen.Clear()
}

func (s *Screen) ClsBg(bg Color) {
	style := tcell.StyleDefault.Background(tcellPalette[bg])
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Screen) Set(x, y int, fg, bg Color, glyph rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.screen.SetContent(x, y, glyph, nil, styleFor(fg, bg))
}

func (s *Screen) PrintCentered(row int, text string) {
	s.PrintColorCentered(row, White, Black, text)
}

func (s *Screen) PrintColorCentered(row int, fg, bg Color, text string) {
	x := centerColumn(s.width, text)
	for _, r := range text {
		s.Set(x, row, fg, bg, r)
		x++
	}
}

// Show flushes the frame to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

func styleFor(fg, bg Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellPalette[fg]).
		Background(tcellPalette[bg])
}
