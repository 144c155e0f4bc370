package arena

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/grid"
	"github.com/vovakirdan/tile-arena/internal/sim"
)

const (
	hudRows   = 2
	cellW     = 3 // screen columns per tile
	barWidth  = 10
	footRows  = 2
	boardTopY = hudRows
)

// RequiredSize returns the smallest screen the board fits on.
func (g *Game) RequiredSize() (w, h int) {
	n := g.cfg.Grid.Size
	return n*cellW + 2, hudRows + n + 2 + footRows
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "arena: "+g.err.Error(), core.ColorBrightRed)
		return
	}
	if g.sim == nil {
		return
	}
	if w, h := g.RequiredSize(); dst.Width() < w || dst.Height() < h {
		g.renderTooSmall(dst, w, h)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	switch g.sim.State() {
	case sim.Paused:
		g.renderPaused(dst)
	case sim.GameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorYellow)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d", w, h), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.sim
	dst.DrawTextColored(1, 0, "TILE ARENA", core.ColorBrightCyan)
	score := fmt.Sprintf("Score %d  High %d", s.Score(), s.HighScore())
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	speed := fmt.Sprintf("Move %.1fs • Spawn %.1fs", s.MoveInterval(), s.SpawnInterval())
	color := core.ColorGray
	if s.MaxLocked() {
		speed += " (MAX)"
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(1, 1, speed, color)

	if g.showDanger {
		dst.DrawTextColored(dst.Width()-8, 1, "[DEBUG]", core.ColorMagenta)
	}
}

// boardOrigin is the top-left corner of the board frame.
func (g *Game) boardOrigin(dst *core.Screen) (x, y int) {
	w, _ := g.RequiredSize()
	return (dst.Width() - w) / 2, boardTopY
}

// tileToScreen maps a tile to the middle column of its cell. +X is drawn to
// the left and +Z upward, matching the movement keys.
func (g *Game) tileToScreen(dst *core.Screen, t grid.Tile) (x, y int) {
	ox, oy := g.boardOrigin(dst)
	h := g.sim.Grid().Half()
	return ox + 1 + (h-t.X)*cellW + 1, oy + 1 + (h - t.Z)
}

func (g *Game) renderBoard(dst *core.Screen) {
	s := g.sim
	store := s.Store()
	gr := s.Grid()

	ox, oy := g.boardOrigin(dst)
	w, _ := g.RequiredSize()
	dst.DrawBox(ox, oy, w, gr.Size+2, core.ColorGray)

	for _, t := range gr.Tiles() {
		x, y := g.tileToScreen(dst, t)
		dst.SetColored(x, y, '·', core.ColorDarkGray)
	}

	if g.showDanger {
		for _, t := range s.DangerTiles() {
			if gr.InBounds(t) {
				x, y := g.tileToScreen(dst, t)
				dst.SetColored(x-1, y, '░', core.ColorRed)
				dst.SetColored(x, y, '░', core.ColorRed)
				dst.SetColored(x+1, y, '░', core.ColorRed)
			}
		}
	}

	for _, f := range g.flashes {
		if gr.InBounds(f.tile) {
			x, y := g.tileToScreen(dst, f.tile)
			dst.SetColored(x-1, y, '#', core.ColorOrange)
			dst.SetColored(x, y, '#', core.ColorBrightYellow)
			dst.SetColored(x+1, y, '#', core.ColorOrange)
		}
	}

	for _, h := range store.Adversaries() {
		x, y := g.tileToScreen(dst, store.Tile(h))
		dst.SetColored(x, y, 'A', core.ColorBrightRed)
	}

	pt := s.PlayerTile()
	px, py := g.tileToScreen(dst, pt)
	dst.SetColored(px, py, '@', core.ColorBrightCyan)
	r, off := facingGlyph(s.Facing())
	dst.SetColored(px+off, py, r, core.ColorCyan)

	for _, h := range store.Projectiles() {
		e, ok := store.Get(h)
		if !ok {
			continue
		}
		t := gr.WorldToTile(e.Center)
		if !gr.InBounds(t) {
			continue
		}
		x, y := g.tileToScreen(dst, t)
		dst.SetColored(x, y, '*', core.HeatColor(e.Motion.Heat()))
	}
}

// facingGlyph returns the arrow for the player's facing and its column
// offset from the player glyph.
func facingGlyph(f core.Vec3) (rune, int) {
	switch {
	case f.X > 0:
		return '<', -1
	case f.X < 0:
		return '>', 1
	case f.Z < 0:
		return 'v', 1
	default:
		return '^', 1
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	s := g.sim
	_, oy := g.boardOrigin(dst)
	y := oy + s.Grid().Size + 2

	p := s.CooldownProgress()
	filled := int(p * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	label := "Fire "
	color := core.ColorYellow
	if p >= 1 {
		color = core.ColorBrightGreen
	}
	dst.DrawTextColored(1, y, label, core.ColorWhite)
	dst.DrawTextColored(1+len(label), y, bar, color)

	info := fmt.Sprintf("Foes %d  Killed %d", s.Store().AdversaryCount(), g.destroyed)
	dst.DrawTextColored(dst.Width()-len(info)-1, y, info, core.ColorGray)
}

func (g *Game) renderPaused(dst *core.Screen) {
	w, h := 24, 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.FillRect(x, y, w, h, ' ')
	dst.DrawBox(x, y, w, h, core.ColorYellow)
	dst.DrawTextCentered(y+1, "PAUSED", core.ColorBrightYellow)
	dst.DrawTextCentered(y+3, "P resume • R restart", core.ColorGray)
}

type overlayLine struct {
	text  string
	color core.Color
}

func (g *Game) renderGameOver(dst *core.Screen) {
	s := g.sim
	lines := []overlayLine{
		{"GAME OVER", core.ColorBrightRed},
		{fmt.Sprintf("Score: %d", s.Score()), core.ColorBrightWhite},
		{fmt.Sprintf("High:  %d", s.HighScore()), core.ColorWhite},
	}
	if s.NewHigh() {
		lines = append(lines, overlayLine{"★ NEW HIGH ★", core.ColorBrightYellow})
	}
	lines = append(lines, overlayLine{"R restart • Q quit", core.ColorGray})

	w, h := 28, len(lines)+2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.FillRect(x, y, w, h, ' ')
	dst.DrawBox(x, y, w, h, core.ColorRed)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l.text, l.color)
	}
}
