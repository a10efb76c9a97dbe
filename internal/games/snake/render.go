package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme holds the colors used to draw the board.
type Theme struct {
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Empty  core.Color
	Border core.Color
	Text   core.Color
	Alert  core.Color
}

// DefaultTheme matches the embedded default configuration.
func DefaultTheme() Theme {
	return Theme{
		Head:   core.ColorBrightGreen,
		Body:   core.ColorGreen,
		Food:   core.ColorRed,
		Empty:  core.ColorGray,
		Border: core.ColorGray,
		Text:   core.ColorWhite,
		Alert:  core.ColorBrightRed,
	}
}

// ThemeFromConfig resolves the configured color names.
func ThemeFromConfig(cfg config.ThemeConfig) (Theme, error) {
	var t Theme
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{cfg.Head, &t.Head},
		{cfg.Body, &t.Body},
		{cfg.Food, &t.Food},
		{cfg.Empty, &t.Empty},
		{cfg.Border, &t.Border},
		{cfg.Text, &t.Text},
		{cfg.Alert, &t.Alert},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.name)
		if err != nil {
			return Theme{}, fmt.Errorf("snake: theme: %w", err)
		}
		*f.dst = c
	}
	return t, nil
}

// Layout constants. Each board cell is two characters wide so the grid looks square.
const (
	hudHeight    = 2 // Title line + separator
	footerHeight = 2 // Status line + hint line
	cellWidth    = 2
)

// Kind classifies a board cell for drawing.
type Kind int

const (
	KindEmpty Kind = iota
	KindFood
	KindBody
	KindHead
)

// CellKind reports what occupies p. The body wins over food, which may
// spawn underneath it.
func (s State) CellKind(p Position) Kind {
	if len(s.Snake) > 0 && s.Snake[0] == p {
		return KindHead
	}
	if s.IsOccupiedByBody(p) {
		return KindBody
	}
	if s.IsFood(p) {
		return KindFood
	}
	return KindEmpty
}

// MinScreenSize returns the smallest screen that fits the board and HUD.
func (g *Game) MinScreenSize() (int, int) {
	size := g.rules.BoardSize
	return size*cellWidth + 2, size + 2 + hudHeight + footerHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", g.theme.Alert)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH), g.theme.Text)
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, g.theme.Border)
	g.renderCells(dst, board)
	g.renderFooter(dst, board.Bottom())
}

// boardRect returns the bordered board area, centered horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	size := g.rules.BoardSize
	w, h := size*cellWidth+2, size+2
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	return area.CenteredIn(w, h)
}

// renderHUD draws the title and score line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d", g.state.Score)
	dst.DrawTextColored(0, 0, hud, g.theme.Text)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', g.theme.Border)
	}
}

// renderCells draws every board cell inside the border.
func (g *Game) renderCells(dst *core.Screen, board core.Rect) {
	size := g.rules.BoardSize
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sx := board.X + 1 + x*cellWidth
			sy := board.Y + 1 + y

			switch g.state.CellKind(Position{X: x, Y: y}) {
			case KindHead:
				dst.SetColored(sx, sy, '█', g.theme.Head)
				dst.SetColored(sx+1, sy, '█', g.theme.Head)
			case KindBody:
				dst.SetColored(sx, sy, '█', g.theme.Body)
				dst.SetColored(sx+1, sy, '█', g.theme.Body)
			case KindFood:
				dst.SetColored(sx, sy, '●', g.theme.Food)
			default:
				dst.SetColored(sx, sy, '·', g.theme.Empty)
			}
		}
	}
}

// renderFooter draws the game-over indicator and the start/restart hint.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.state.GameOver {
		dst.DrawTextCentered(y, "Game Over", g.theme.Alert)
		dst.DrawTextCentered(y+1, "Press R to restart", g.theme.Text)
		return
	}
	dst.DrawTextCentered(y+1, "Arrows/WASD to move  |  R to restart", g.theme.Text)
}
