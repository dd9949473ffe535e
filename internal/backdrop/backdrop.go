// Package backdrop implements an ambient animated background: a particle
// field advanced with clamped delta time, a per-frame proximity graph of
// lines and triangles, and a theme-aware renderer painting onto a raster
// surface. All per-frame work runs synchronously inside one scheduled
// callback; host signals (theme, size) are read at the top of each frame.
package backdrop

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/mesh-backdrop/internal/config"
)

// Backdrop runs the per-frame pipeline: integrate, build the proximity
// graph, paint. It owns the particle buffer; the edge/triangle slices are
// transient and rebuilt every Step.
type Backdrop struct {
	cfg   config.Config
	field *Field
	theme *Resolver

	// Sampled once at construction; not reactive, unlike the theme signal.
	reducedMotion bool

	width, height float64
	lastFrame     time.Time

	edges []Edge
	tris  []Triangle
}

// New builds a backdrop. theme and motion may be nil (defaults: light,
// motion enabled). rng may be nil; tests pass a seeded source.
func New(cfg config.Config, theme *Resolver, motion MotionPreference, rng *rand.Rand) *Backdrop {
	b := &Backdrop{
		cfg:   cfg.Normalize(),
		field: NewField(rng),
		theme: theme,
	}
	if motion != nil {
		b.reducedMotion = motion.ReducedMotion()
	}
	return b
}

// Resize adopts a new content-box size and respawns the field. It runs
// synchronously to completion, so the fresh particle set is always in place
// before the next frame integrates. Old particles are discarded by design.
func (b *Backdrop) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width, b.height = width, height
	b.field.Init(width, height, b.cfg)
}

// Step advances the simulation one frame and rebuilds the proximity graph.
// Under reduced motion the integration is skipped entirely; the graph is
// still rebuilt so rendering stays coherent with resize and theme changes.
func (b *Backdrop) Step(now time.Time) {
	dt := 1.0
	if !b.lastFrame.IsZero() {
		dt = NormalizedDelta(now.Sub(b.lastFrame))
	}
	b.lastFrame = now
	if !b.reducedMotion {
		Integrate(b.field.Particles(), dt, b.width, b.height)
	}
	b.edges, b.tris = BuildGraph(b.field.Particles(), b.cfg.LineMaxDist, b.cfg.TriMaxDist)
}

// Render paints the last stepped frame. A nil canvas renders nothing.
func (b *Backdrop) Render(c Canvas) {
	if c == nil {
		return
	}
	mode := Light
	if b.theme != nil {
		mode = b.theme.Mode()
	}
	RenderFrame(c, b.field.Particles(), b.edges, b.tris, mode, b.cfg)
}

// Config returns the frozen render configuration.
func (b *Backdrop) Config() config.Config { return b.cfg }

// Particles exposes the live buffer; read-only for callers.
func (b *Backdrop) Particles() []Particle { return b.field.Particles() }

// Run mounts the backdrop on sched: every frame it re-measures the content
// box (a size change respawns the field before integration), steps, and
// paints through canvas. measure and canvas may be nil. The returned token
// is the caller's unmount handle; cancel it via the same scheduler.
func Run(b *Backdrop, sched Scheduler, measure func() (w, h float64), canvas func() Canvas) *Token {
	return sched.Start(func(now time.Time) {
		if measure != nil {
			w, h := measure()
			if w != b.width || h != b.height {
				b.Resize(w, h)
			}
		}
		b.Step(now)
		if canvas != nil {
			b.Render(canvas())
		}
	})
}
