package backdrop

// MotionPreference reports whether the host requests reduced motion. The
// engine samples it once at construction; unlike the theme signal it is not
// reactive, and that asymmetry is intentional. Reduced motion gates the
// integrator only — rendering still happens every frame so theme and resize
// changes stay visible.
type MotionPreference interface {
	ReducedMotion() bool
}

// StaticMotionPreference is a fixed preference value.
type StaticMotionPreference bool

func (p StaticMotionPreference) ReducedMotion() bool { return bool(p) }
