package system

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/core/event"
	"github.com/helkite/aster/internal/scripting"
	"github.com/helkite/aster/internal/vmath"
	"github.com/helkite/aster/internal/world"
)

// defaultOreItem is the drop carried by spawned asteroids.
const defaultOreItem = 1

// FieldSystem runs the asteroid spawner. Every expired countdown raises
// the level (capped), rolls attack-or-passive for the next asteroid, and
// resets the countdown, which shrinks as the level climbs. Dead
// asteroids are compacted out of the roster each tick.
type FieldSystem struct {
	st     *world.State
	cfg    config.FieldConfig
	engine *scripting.Engine
	log    *zap.Logger
}

// NewFieldSystem builds the spawner. engine may be nil, in which case the
// built-in spawn roll is always used.
func NewFieldSystem(st *world.State, cfg config.FieldConfig, engine *scripting.Engine) *FieldSystem {
	return &FieldSystem{st: st, cfg: cfg, engine: engine, log: st.Log.Named("field")}
}

func (s *FieldSystem) Update(time.Duration) {
	s.st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) {
		s.cull(f)
		s.compact(f)

		if f.Countdown > 0 {
			f.Countdown--
			return
		}

		if f.Level < s.cfg.MaxLevel {
			f.Level++
			event.Emit(s.st.Bus, event.LevelRaised{Level: f.Level})
			s.log.Info("field level raised", zap.Int("level", f.Level))
		}

		id := s.spawn(f)
		f.Asteroids = append(f.Asteroids, id)
		f.Countdown = 200 - f.Level*6
		if f.Countdown < s.cfg.MinCountdown {
			f.Countdown = s.cfg.MinCountdown
		}
	})
}

// cull reclaims asteroids that drifted out of the field on either side.
func (s *FieldSystem) cull(f *component.AsteroidField) {
	for _, id := range f.Asteroids {
		tf, ok := s.st.Transforms.Get(id)
		if ok && math.Abs(tf.Position.X) > f.XRange {
			s.st.World.MarkForDestruction(id)
		}
	}
}

// compact drops destroyed asteroids from the roster.
func (s *FieldSystem) compact(f *component.AsteroidField) {
	live := f.Asteroids[:0]
	for _, id := range f.Asteroids {
		if s.st.World.Alive(id) {
			live = append(live, id)
		}
	}
	f.Asteroids = live
}

// spawn places one asteroid at the field's -x edge drifting across.
// Attack spawns cross the ship's build area; passive ones pass above or
// below it.
func (s *FieldSystem) spawn(f *component.AsteroidField) ecs.EntityID {
	attack, ok := false, false
	if s.engine != nil {
		attack, ok = s.engine.SpawnRoll(f.Level, s.cfg.MaxLevel)
	}
	if !ok {
		attack = s.st.Rng.Intn(s.cfg.MaxLevel-f.Level+5) < 4
	}

	var y, z float64
	if attack {
		y = 1 + s.st.Rng.Float64()*7
		z = s.st.Rng.Float64() * 5
	} else {
		y = s.st.Rng.Float64()*6 - 3
		if s.st.Rng.Intn(2) == 0 {
			y += 14
		} else {
			y -= 10
		}
		z = 6 + s.st.Rng.Float64()*3
	}

	item := defaultOreItem
	if s.st.Items != nil {
		if id, ok := s.st.Items.RandomID(s.st.Rng); ok {
			item = id
		}
	}

	pos := vmath.V3(-f.XRange, y, z)
	vel := vmath.V3(s.cfg.AsteroidSpeed, 0, 0)
	id := s.st.SpawnAsteroid(pos, vel, s.cfg.AsteroidHP, item)

	// Random facing so the rock field does not look stamped.
	if tf, ok := s.st.Transforms.Get(id); ok {
		tf.Rotation = vmath.QuatFromAngleZ(s.st.Rng.Float64() * 2 * math.Pi)
		s.st.Transforms.Set(id, tf)
	}
	return id
}
