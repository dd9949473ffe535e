package backdrop

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/mesh-backdrop/internal/config"
)

// Particle is a simulated point in surface-space coordinates. Velocity is
// expressed in units per 60fps-normalized frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

const (
	// minParticles keeps a visible field even for zero-area containers.
	minParticles = 20

	// areaPerUnit scales the count formula so typical viewports land in the
	// tens-to-low-hundreds range. Not a physical unit.
	areaPerUnit = 100000.0

	minSpawnSpeed = 0.15
	maxSpawnSpeed = 0.5
)

// ParticleCount derives the particle count from surface area and density,
// floored at minParticles.
func ParticleCount(width, height, density float64) int {
	n := int(math.Floor(width * height / areaPerUnit * density * 100))
	if n < minParticles {
		return minParticles
	}
	return n
}

// Field owns the particle buffer. The buffer is replaced wholesale on every
// Init; only the integrator mutates it in place between Inits.
type Field struct {
	rng       *rand.Rand
	particles []Particle
}

// NewField creates an empty field. A nil rng falls back to a self-seeded
// source; tests pass a fixed seed for reproducible spawns.
func NewField(rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Field{rng: rng}
}

// Init respawns the field for the given surface size. Previous particles are
// discarded: resizing does not preserve continuity.
func (f *Field) Init(width, height float64, cfg config.Config) {
	n := ParticleCount(width, height, cfg.Density)
	ps := make([]Particle, n)
	for i := range ps {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := (minSpawnSpeed + f.rng.Float64()*(maxSpawnSpeed-minSpawnSpeed)) * cfg.Speed
		ps[i] = Particle{
			X:  f.rng.Float64() * width,
			Y:  f.rng.Float64() * height,
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		}
	}
	f.particles = ps
}

// Particles exposes the live buffer for the per-frame call chain. The slice
// must not be retained past the frame.
func (f *Field) Particles() []Particle { return f.particles }
