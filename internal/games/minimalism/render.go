package minimalism

import (
	"fmt"
	"math"

	"github.com/vovakirdan/minimalism/internal/config"
	"github.com/vovakirdan/minimalism/internal/core"
)

// Visual characters for rendering. A tile is two cells wide and one tall.
const (
	SolidChar     = '█'
	BreakableChar = '▒'
	PickupChar    = '◆'
	ExitChar      = '▣'
	SceneryChar   = '~'
	PlayerChar    = '█'
)

const (
	cellsPerTile = 2
	hudRows      = 1
	bannerHeight = 5
)

// Render draws the visible part of the level around the camera, the actor
// and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil || g.session.Phase() == PhaseLoading {
		g.drawLoadError(dst)
		return
	}

	g.drawLevel(dst)
	g.drawHUD(dst)

	if msg := g.session.Message(); msg != "" {
		dst.DrawTextCentered(dst.Height()-1, msg, core.ColorGray)
	}

	switch {
	case g.loadErr != nil:
		g.drawLoadError(dst)
	case g.paused:
		g.drawCenteredMessage(dst, (dst.Height()-bannerHeight)/2, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	case g.session.Complete():
		g.drawBanner(dst)
	}
}

// view maps pixel coordinates to screen cells around the camera.
type view struct {
	left, top float64 // pixel coordinates of the top-left screen cell
	tileSize  float64
}

func (g *Game) view(dst *core.Screen) view {
	ts := float64(g.session.Grid().TileSize())
	cam := g.session.Camera()
	cols := float64(dst.Width()) / cellsPerTile
	rows := float64(dst.Height() - hudRows)
	return view{
		left:     cam.X - cols*ts/2,
		top:      cam.Y + rows*ts/2,
		tileSize: ts,
	}
}

func (v view) cellX(px float64) int {
	return int(math.Floor((px - v.left) / v.tileSize * cellsPerTile))
}

func (v view) cellY(py float64) int {
	return hudRows + int(math.Floor((v.top-py)/v.tileSize))
}

func (g *Game) drawLevel(dst *core.Screen) {
	grid := g.session.Grid()
	roles := g.session.Roles()
	v := g.view(dst)
	ts := v.tileSize

	firstCol := int(math.Floor(v.left / ts))
	lastCol := firstCol + dst.Width()/cellsPerTile + 1
	topRow := int(math.Floor(v.top / ts))
	bottomRow := topRow - (dst.Height() - hudRows) - 1

	type layerStyle struct {
		index int
		glyph func(breakable bool) (rune, core.Color)
	}
	styles := []layerStyle{
		{roles.Background, func(bool) (rune, core.Color) { return SceneryChar, core.ColorScenery }},
		{roles.Trigger, func(bool) (rune, core.Color) { return ExitChar, core.ColorTrigger }},
		{roles.Pickup, func(bool) (rune, core.Color) { return PickupChar, core.ColorPickup }},
		{roles.Collision, func(b bool) (rune, core.Color) {
			if b {
				return BreakableChar, core.ColorBreakable
			}
			return SolidChar, core.ColorSolid
		}},
	}

	for _, st := range styles {
		layer := grid.Layer(st.index)
		if layer == nil {
			continue
		}
		for row := max(bottomRow, 0); row <= min(topRow, grid.Height()-1); row++ {
			for col := max(firstCol, 0); col <= min(lastCol, grid.Width()-1); col++ {
				tile, ok := layer.At(col, row)
				if !ok {
					continue
				}
				r, c := st.glyph(tile.Breakable)
				x := v.cellX(float64(col) * ts)
				y := v.cellY(float64(row+1) * ts)
				if y < hudRows {
					continue
				}
				dst.SetColored(x, y, r, c)
				dst.SetColored(x+1, y, r, c)
			}
		}
	}

	a := g.session.Actor()
	x := v.cellX(a.Position.X)
	y := v.cellY(a.Position.Y + a.Height)
	w := max(int(math.Round(a.Width/ts*cellsPerTile)), 1)
	h := max(int(math.Round(a.Height/ts)), 1)
	for dy := 0; dy < h; dy++ {
		if y+dy < hudRows {
			continue
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y+dy, PlayerChar, core.ColorPlayer)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	left := fmt.Sprintf(" Level %d/%d %s ", s.LevelIndex()+1, len(s.provider.Names()), s.LevelName())
	right := fmt.Sprintf(" Score: %d  Items: %d ", g.hud.Score(), s.Items())

	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorBrightYellow)
}

func (g *Game) drawBanner(dst *core.Screen) {
	y, shown := g.hud.Banner()
	if !shown {
		y = (dst.Height() - bannerHeight) / 2
	}

	switch {
	case g.finished || (g.session.IsLastLevel() && g.session.cfg.Levels.OnLast != config.OnLastWrap):
		g.drawCenteredMessage(dst, y, "THE END",
			fmt.Sprintf("Score: %d  |  Press R to play again", g.session.Score()), core.ColorBrightGreen)
	default:
		g.drawCenteredMessage(dst, y, "LEVEL COMPLETE",
			fmt.Sprintf("Score: %d  Items: %d  |  N next, R retry", g.session.Score(), g.session.Items()), core.ColorBrightGreen)
	}
}

func (g *Game) drawLoadError(dst *core.Screen) {
	msg := "no level loaded"
	if g.loadErr != nil {
		msg = g.loadErr.Error()
	}
	if limit := dst.Width() - 6; len(msg) > limit && limit > 3 {
		msg = msg[:limit-3] + "..."
	}
	g.drawCenteredMessage(dst, (dst.Height()-bannerHeight)/2, "LEVEL FAILED TO LOAD", msg, core.ColorBrightRed)
	dst.DrawTextCentered(dst.Height()-1, "R to retry, B for menu", core.ColorGray)
}

// drawCenteredMessage draws a message box centred horizontally at row y.
func (g *Game) drawCenteredMessage(dst *core.Screen, y int, title, subtitle string, c core.Color) {
	w := dst.Width()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := bannerHeight
	boxX := (w - boxW) / 2

	dst.DrawRect(core.NewRect(boxX, y, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, y, boxW, boxH), c)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, y+1, title, c)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, y+3, subtitle)
}
