package view

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Grid-Raider/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	hudHeight = 56
	hudScale  = 2 // basicfont is tiny; draw it at 2x
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// hudText draws s at (x,y) in screen pixels.
func hudText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, hudFace, op)
}

// healthColor shades the health readout as it drops.
func healthColor(h, full int) color.Color {
	switch {
	case h*3 <= full:
		return colornames.Red
	case h*3 <= full*2:
		return colornames.Orange
	default:
		return colornames.Lightgreen
	}
}

// drawHUD renders the status bar along the bottom of the map area.
func (g *Game) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	y := float32(g.mapH)
	w := float32(g.mapW)
	vector.FillRect(screen, 0, y, w, hudHeight, color.RGBA{R: 16, G: 12, B: 12, A: 255}, false)
	vector.StrokeLine(screen, 0, y, w, y, 2, color.RGBA{R: 90, G: 60, B: 50, A: 255}, false)

	cfg := g.sim.Config()
	ty := float64(y) + 14
	hudText(screen, fmt.Sprintf("HEALTH %3d", snap.HUD.Health), 16, ty, healthColor(snap.HUD.Health, cfg.PlayerHealth))
	ammo := fmt.Sprintf("AMMO %3d", snap.HUD.Ammo)
	if cfg.AmmoPerShot == 0 {
		ammo = "AMMO  --"
	}
	hudText(screen, ammo, 200, ty, colornames.Khaki)
	hudText(screen, fmt.Sprintf("[%d] %s", snap.HUD.Weapon+1, snap.HUD.Weapon), 360, ty, colornames.Lightsteelblue)

	alive := 0
	for _, e := range snap.Enemies {
		if e.State != game.EnemyDead {
			alive++
		}
	}
	hudText(screen, fmt.Sprintf("IMPS %d/%d", alive, len(snap.Enemies)), float64(w)-170, ty, colornames.Plum)

	switch {
	case snap.Phase == game.PhaseGameOver:
		g.drawBanner(screen, "YOU DIED - R to restart", colornames.Red)
	case snap.Cleared:
		g.drawBanner(screen, "LEVEL CLEARED - R to restart", colornames.Gold)
	}
	if g.status != "" {
		hudText(screen, g.status, 16, 8, colornames.White)
	}
}

// drawBanner centres a message over the map.
func (g *Game) drawBanner(screen *ebiten.Image, msg string, c color.Color) {
	bw := float32(len(msg)*7*hudScale + 32)
	bh := float32(13*hudScale + 24)
	bx := (float32(g.mapW) - bw) / 2
	by := (float32(g.mapH) - bh) / 2
	vector.FillRect(screen, bx, by, bw, bh, color.RGBA{A: 200}, false)
	vector.StrokeRect(screen, bx, by, bw, bh, 2, c, false)
	hudText(screen, msg, float64(bx)+16, float64(by)+12, c)
}
