// Package display renders the simulation into a terminal with tcell and
// translates key and mouse events into player input. It is also the
// render-resource backend: model handles map to terminal sprites.
package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/input"
	"github.com/helkite/aster/internal/physics"
	"github.com/helkite/aster/internal/render"
	"github.com/helkite/aster/internal/vmath"
	"github.com/helkite/aster/internal/world"
)

type sprite struct {
	mesh render.MeshID
	pos  vmath.Vec3
}

// Display owns the terminal screen. Model handles issued through the
// render.Manager interface map to sprites positioned in world space and
// projected to cells each frame.
type Display struct {
	screen  tcell.Screen
	cfg     config.DisplayConfig
	st      *world.State
	log     *zap.Logger
	sprites map[render.ModelID]*sprite
	nextID  render.ModelID
	events  chan tcell.Event
}

func New(cfg config.DisplayConfig, st *world.State) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()

	d := &Display{
		screen:  screen,
		cfg:     cfg,
		st:      st,
		log:     st.Log.Named("display"),
		sprites: make(map[render.ModelID]*sprite),
		events:  make(chan tcell.Event, 64),
	}
	go d.pumpEvents()
	return d, nil
}

func (d *Display) pumpEvents() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		d.events <- ev
	}
}

// --- render.Manager ---

func (d *Display) CreateModel(mesh render.MeshID, m vmath.Mat4) render.ModelID {
	d.nextID++
	d.sprites[d.nextID] = &sprite{mesh: mesh, pos: m.Translation()}
	return d.nextID
}

func (d *Display) UpdateModel(_ render.MeshID, id render.ModelID, m vmath.Mat4) {
	if sp, ok := d.sprites[id]; ok {
		sp.pos = m.Translation()
	}
}

func (d *Display) RemoveModel(_ render.MeshID, id render.ModelID) {
	delete(d.sprites, id)
}

// --- input ---

// ProcessInput drains pending terminal events into the input state.
// Returns false when the player quit.
func (d *Display) ProcessInput() bool {
	for {
		select {
		case ev := <-d.events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if !d.handleKey(tev) {
					return false
				}
			case *tcell.EventMouse:
				d.handleMouse(tev)
			case *tcell.EventResize:
				d.screen.Sync()
			}
		default:
			return true
		}
	}
}

func (d *Display) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'm':
			d.st.Input.Action = input.ActionMining
		case 'l':
			d.st.Input.Action = input.ActionLaser
		case ' ':
			d.st.Input.Action = input.ActionNone
			d.st.Input.ClearTarget()
		}
	}
	return true
}

// pickDepth is how far above the scene the pick ray starts. Asteroids
// live below z 10, so the ray covers the whole column under the cursor.
const pickDepth = 40.0

// handleMouse turns a left click into a target lock. A pick ray is cast
// straight down through the clicked world point; if it misses, the
// nearest asteroid within a cell-sized radius is taken instead, which
// forgives the coarse terminal grid.
func (d *Display) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	cx, cy := ev.Position()
	p := d.cellToWorld(cx, cy)

	bodies := d.st.CollisionBodies()
	if hit, ok := physics.Raycast(bodies, vmath.V3(p.X, p.Y, pickDepth), p, component.CategoryAsteroid); ok {
		d.st.Input.SetTarget(hit.Entity)
		d.log.Debug("target locked", zap.Uint64("entity", uint64(hit.Entity)))
		return
	}

	ids := physics.OverlapSphere(bodies, p, 1.0, component.CategoryAsteroid)
	if len(ids) == 0 {
		return
	}
	best := ids[0]
	bestDist := d.targetDist(best, p)
	for _, id := range ids[1:] {
		if dist := d.targetDist(id, p); dist < bestDist {
			best, bestDist = id, dist
		}
	}
	d.st.Input.SetTarget(best)
	d.log.Debug("target locked", zap.Uint64("entity", uint64(best)))
}

func (d *Display) targetDist(id ecs.EntityID, p vmath.Vec3) float64 {
	tf, ok := d.st.Transforms.Get(id)
	if !ok {
		return 1e18
	}
	return tf.Position.Sub(p).LenSq()
}

// --- projection ---

func (d *Display) worldToCell(p vmath.Vec3) (int, int) {
	w, h := d.screen.Size()
	sx := float64(w) / (2 * d.cfg.ViewHalf)
	sy := float64(h) / (2 * d.cfg.ViewHalf)
	return int(p.X*sx) + w/2, h/2 - int(p.Y*sy)
}

func (d *Display) cellToWorld(cx, cy int) vmath.Vec3 {
	w, h := d.screen.Size()
	sx := float64(w) / (2 * d.cfg.ViewHalf)
	sy := float64(h) / (2 * d.cfg.ViewHalf)
	return vmath.V3(float64(cx-w/2)/sx, float64(h/2-cy)/sy, 0)
}

// --- frame ---

var beamStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)

// Render draws beams, sprites and the HUD, then flushes the frame.
func (d *Display) Render() {
	d.screen.Clear()

	d.st.Lines.Each(func(_ ecs.EntityID, line *component.Line) {
		d.drawBeam(line)
	})

	for _, sp := range d.sprites {
		x, y := d.worldToCell(sp.pos)
		d.screen.SetContent(x, y, d.runeFor(sp.mesh), nil, tcell.StyleDefault)
	}

	d.drawHUD()
	d.screen.Show()
}

func (d *Display) drawBeam(line *component.Line) {
	const steps = 32
	delta := line.To.Sub(line.From).Scale(1.0 / steps)
	p := line.From
	for i := 0; i <= steps; i++ {
		x, y := d.worldToCell(p)
		d.screen.SetContent(x, y, '·', nil, beamStyle)
		p = p.Add(delta)
	}
}

func (d *Display) runeFor(mesh render.MeshID) rune {
	switch d.st.Meshes.Name(mesh) {
	case world.MeshAsteroid:
		return 'O'
	case world.MeshMissile:
		return '*'
	case "core":
		return '@'
	case "miner":
		return 'M'
	case "laser":
		return 'L'
	case "cooler":
		return 'C'
	default:
		return '#'
	}
}

func (d *Display) drawHUD() {
	var heat float64
	d.st.Ships.Each(func(_ ecs.EntityID, ship *component.Ship) {
		heat = ship.Heat
	})
	level := 0
	d.st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) {
		level = f.Level
	})
	lock := "-"
	if id, ok := d.st.Input.TargetOf(); ok {
		lock = fmt.Sprintf("#%d", id)
	}
	hud := fmt.Sprintf(" heat %.1f  level %d  mode %s  target %s ",
		heat, level, d.st.Input.Action, lock)
	for i, r := range hud {
		d.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
}

// Close finalizes the terminal.
func (d *Display) Close() {
	d.screen.Fini()
}
