package backdrop

import "sync"

// Mode is the resolved color scheme.
type Mode uint8

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// OverrideView reads an explicit host-level theme override, when one is set.
// This is the analogue of a theme attribute on the document root.
type OverrideView interface {
	Mode() (Mode, bool)
	Subscribe(fn func()) (unsubscribe func())
}

// SchemeView reads the system-level dark-scheme preference.
type SchemeView interface {
	Dark() bool
	Subscribe(fn func()) (unsubscribe func())
}

// Resolver answers "light or dark" and notifies on change. Resolution order:
// explicit override if set, otherwise the system preference, otherwise light.
// It holds long-lived subscriptions to both inputs; Close releases them.
// The resolver never writes to either input.
type Resolver struct {
	override OverrideView
	scheme   SchemeView

	mu    sync.Mutex
	mode  Mode
	subs  map[int]func(Mode)
	next  int
	stops []func()
}

// NewResolver resolves the mode eagerly and subscribes to both inputs.
// Either input may be nil when the host has no such signal.
func NewResolver(override OverrideView, scheme SchemeView) *Resolver {
	r := &Resolver{
		override: override,
		scheme:   scheme,
		subs:     make(map[int]func(Mode)),
	}
	r.mode = r.resolve()
	if override != nil {
		r.stops = append(r.stops, override.Subscribe(r.refresh))
	}
	if scheme != nil {
		r.stops = append(r.stops, scheme.Subscribe(r.refresh))
	}
	return r
}

func (r *Resolver) resolve() Mode {
	if r.override != nil {
		if m, ok := r.override.Mode(); ok {
			return m
		}
	}
	if r.scheme != nil && r.scheme.Dark() {
		return Dark
	}
	return Light
}

func (r *Resolver) refresh() {
	r.mu.Lock()
	m := r.resolve()
	if m == r.mode {
		r.mu.Unlock()
		return
	}
	r.mode = m
	fns := make([]func(Mode), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()
	for _, fn := range fns {
		fn(m)
	}
}

// Mode returns the currently resolved scheme.
func (r *Resolver) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Subscribe registers fn for mode changes and returns its unsubscribe func.
func (r *Resolver) Subscribe(fn func(Mode)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.next
	r.next++
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// Close releases the long-lived override/scheme subscriptions. The resolver
// stops reacting to input changes afterwards.
func (r *Resolver) Close() {
	for _, stop := range r.stops {
		stop()
	}
	r.stops = nil
}

// OverrideSignal is a settable OverrideView for hosts that publish an
// explicit theme choice.
type OverrideSignal struct {
	mu   sync.Mutex
	mode Mode
	set  bool
	subs map[int]func()
	next int
}

// Set publishes an explicit mode.
func (s *OverrideSignal) Set(m Mode) {
	s.mu.Lock()
	if s.set && s.mode == m {
		s.mu.Unlock()
		return
	}
	s.mode = m
	s.set = true
	fns := s.listeners()
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Clear removes the override so resolution falls back to the system scheme.
func (s *OverrideSignal) Clear() {
	s.mu.Lock()
	if !s.set {
		s.mu.Unlock()
		return
	}
	s.set = false
	fns := s.listeners()
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *OverrideSignal) Mode() (Mode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.set
}

func (s *OverrideSignal) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *OverrideSignal) listeners() []func() {
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

// SchemeSignal is a settable SchemeView mirroring the system dark-mode
// preference.
type SchemeSignal struct {
	mu   sync.Mutex
	dark bool
	subs map[int]func()
	next int
}

func (s *SchemeSignal) SetDark(dark bool) {
	s.mu.Lock()
	if s.dark == dark {
		s.mu.Unlock()
		return
	}
	s.dark = dark
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *SchemeSignal) Dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *SchemeSignal) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
