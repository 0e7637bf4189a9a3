package view

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/Garsondee/Grid-Raider/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

// mapPixels is the longest side of the map area in screen pixels.
const mapPixels = 720

// statusDuration is how long a transient status line stays up.
const statusDuration = 3 * time.Second

// Options configures a Game.
type Options struct {
	Level      *game.Level
	LevelKey   string // builtin level name stored in replays; empty for files
	Config     game.Config
	RecordPath string // write a replay here on restart and on Close; empty disables
	KeyMap     KeyMap
	Log        *logrus.Entry
}

// Game is the ebiten.Game that owns one simulation and draws it top-down.
type Game struct {
	opts Options
	sim  *game.Sim
	keys KeyMap
	feed *Feed
	anim Anim
	rec  *game.Recorder
	log  *logrus.Entry

	now  func() time.Time
	last time.Time

	scale         float64 // screen pixels per world unit
	mapW, mapH    int     // map area in pixels
	width, height int

	status      string
	statusUntil time.Time
}

// New builds the game and its first session.
func New(opts Options) (*Game, error) {
	if opts.Level == nil {
		opts.Level = game.DefaultLevel()
		opts.LevelKey = "default"
	}
	if opts.KeyMap == nil {
		opts.KeyMap = DefaultKeyMap()
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	gm := opts.Level.Map
	ext := math.Max(float64(gm.Cols), float64(gm.Rows)) * gm.TileSize
	g := &Game{
		opts:  opts,
		keys:  opts.KeyMap,
		log:   opts.Log.WithField("component", "view"),
		now:   time.Now,
		scale: mapPixels / ext,
	}
	g.mapW = int(float64(gm.Cols) * gm.TileSize * g.scale)
	g.mapH = int(float64(gm.Rows) * gm.TileSize * g.scale)
	g.width = g.mapW + feedPanelWidth
	g.height = g.mapH + hudHeight
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart throws away the current session and starts a fresh one on the same
// level. A pending recording is saved first.
func (g *Game) restart() error {
	if err := g.saveRecording(); err != nil {
		g.log.WithError(err).Warn("could not save replay")
	}
	sim, err := game.NewSim(g.opts.Level, g.opts.Config, g.opts.Log)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	g.sim = sim
	g.feed = NewFeed()
	g.anim = Anim{}
	if g.opts.RecordPath != "" {
		g.rec = game.NewRecorder(g.opts.LevelKey, g.opts.Config)
	}
	g.last = g.now()
	g.log.WithField("level", sim.LevelName()).Info("session started")
	return nil
}

// saveRecording writes the current recording, if any frames were captured.
func (g *Game) saveRecording() error {
	if g.rec == nil || g.rec.Len() == 0 {
		return nil
	}
	if err := g.rec.Save(g.opts.RecordPath); err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{"file": g.opts.RecordPath, "frames": g.rec.Len()}).Info("replay saved")
	return nil
}

// Close flushes the recording. Call it after ebiten.RunGame returns.
func (g *Game) Close() error {
	return g.saveRecording()
}

// Sim exposes the running simulation.
func (g *Game) Sim() *game.Sim { return g.sim }

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.now().Add(statusDuration)
}

func (g *Game) Update() error {
	now := g.now()
	elapsed := now.Sub(g.last)
	g.last = now

	if err := g.handleKeys(); err != nil {
		return err
	}
	g.step(elapsed, g.keys.Poll(ebiten.IsKeyPressed))

	if g.status != "" && now.After(g.statusUntil) {
		g.status = ""
	}
	return nil
}

// step advances the simulation and feeds the result to the presentation
// state.
func (g *Game) step(elapsed time.Duration, in game.InputState) game.StepResult {
	if g.rec != nil && g.sim.Phase() == game.PhasePlaying {
		g.rec.Record(elapsed, in)
	}
	res := g.sim.Step(elapsed, in)
	g.feed.AddStep(res)
	g.anim.Apply(res)
	g.anim.Tick(elapsed.Seconds(), g.sim.Player.Speed())
	return res
}

// handleKeys processes the meta keys that are not simulation actions.
func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
		g.setStatus("restarted")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if err := g.copyReport(); err != nil {
			g.log.WithError(err).Warn("report copy failed")
			g.setStatus("report copy failed")
		} else {
			g.setStatus("report copied to clipboard")
		}
	}
	return nil
}

// toScreen maps world coordinates to map-area pixels. Cell (0,0) is centred
// on the world origin, so the map starts half a tile before it.
func (g *Game) toScreen(x, z float64) (float32, float32) {
	half := g.sim.Map.TileSize / 2
	return float32((x + half) * g.scale), float32((z + half) * g.scale)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 10, A: 255})
	snap := g.sim.Snapshot()

	g.drawMap(screen)
	g.drawEnemies(screen, snap)
	g.drawProjectiles(screen, snap)
	g.drawPlayer(screen, snap)
	g.drawWeapon(screen)

	if g.anim.HurtAlpha() > 0 {
		vector.FillRect(screen, 0, 0, float32(g.mapW), float32(g.mapH), g.anim.HurtColor(), false)
	}

	g.drawHUD(screen, snap)
	g.feed.Draw(screen, g.mapW, g.height)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("F=%d  %.0f FPS  F9=report", snap.Frame, ebiten.ActualFPS()), 6, g.mapH-16)
}

func (g *Game) drawMap(screen *ebiten.Image) {
	gm := g.sim.Map
	ts := float32(gm.TileSize * g.scale)
	vector.FillRect(screen, 0, 0, float32(g.mapW), float32(g.mapH), color.RGBA{R: 34, G: 30, B: 28, A: 255}, false)
	for row := 0; row < gm.Rows; row++ {
		for col := 0; col < gm.Cols; col++ {
			x, y := float32(col)*ts, float32(row)*ts
			switch gm.CellAt(col, row) {
			case game.CellWall:
				vector.FillRect(screen, x, y, ts, ts, color.RGBA{R: 96, G: 84, B: 72, A: 255}, false)
				vector.StrokeRect(screen, x, y, ts, ts, 1, color.RGBA{R: 60, G: 52, B: 44, A: 255}, false)
			case game.CellEnemySpawn:
				vector.StrokeRect(screen, x+3, y+3, ts-6, ts-6, 1, color.RGBA{R: 90, G: 30, B: 30, A: 120}, false)
			}
		}
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image, snap game.Snapshot) {
	r := float32(g.sim.Config().EnemyHitRadius * g.scale)
	for _, e := range snap.Enemies {
		x, y := g.toScreen(e.X, e.Z)
		switch e.Sprite {
		case game.SpriteImpDead:
			vector.FillCircle(screen, x, y, r*0.8, colornames.Dimgray, true)
			continue
		case game.SpriteImpAttack:
			vector.FillCircle(screen, x, y, r*1.15, colornames.Orange, true)
		default:
			vector.FillCircle(screen, x, y, r, colornames.Firebrick, true)
		}
		if e.State != game.EnemyIdle {
			vector.StrokeCircle(screen, x, y, r+3, 1, colornames.Crimson, true)
		}
		hp := float32(e.HP) / float32(g.sim.Config().EnemyHP)
		vector.FillRect(screen, x-r, y-r-6, 2*r*hp, 3, colornames.Limegreen, false)
	}
}

func (g *Game) drawProjectiles(screen *ebiten.Image, snap game.Snapshot) {
	for _, p := range snap.Projectiles {
		x, y := g.toScreen(p.X, p.Z)
		vector.FillCircle(screen, x, y, 5, colornames.Orangered, true)
		vector.FillCircle(screen, x, y, 2.5, colornames.Yellow, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, snap game.Snapshot) {
	p := snap.Player
	x, y := g.toScreen(p.X, p.Z)
	ex, ey := g.toScreen(p.X+p.FwdX*2, p.Z+p.FwdZ*2)
	if g.anim.Recoil > 0.5 {
		// Tracer out to the edge of the map.
		far := g.sim.Map.Extent()
		tx, ty := g.toScreen(p.X+p.FwdX*far, p.Z+p.FwdZ*far)
		vector.StrokeLine(screen, x, y, tx, ty, 1, color.NRGBA{R: 255, G: 240, B: 160, A: uint8(g.anim.Recoil * 180)}, true)
	}
	vector.FillCircle(screen, x, y, 6, colornames.Deepskyblue, true)
	vector.StrokeLine(screen, x, y, ex, ey, 2, colornames.White, true)
}

// drawWeapon draws the held weapon at the bottom of the map area, offset by
// recoil and walk bob.
func (g *Game) drawWeapon(screen *ebiten.Image) {
	dx, dy := g.anim.WeaponOffset()
	w, h := float32(36), float32(60)
	c := colornames.Slategray
	if g.sim.Player.Weapon == game.WeaponShotgun {
		w, h = 48, 70
		c = colornames.Saddlebrown
	}
	x := float32(g.mapW)/2 - w/2 + float32(dx)
	y := float32(g.mapH) - h + 12 + float32(dy)
	vector.FillRect(screen, x, y, w, h, c, false)
	vector.FillRect(screen, x+w/2-4, y-10, 8, 12, colornames.Dimgray, false)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
