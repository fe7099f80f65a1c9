package ecs

// System updates W once per tick.
type System[W any] interface {
	Update(w W)
}

// SystemFunc adapts a plain function to System.
type SystemFunc[W any] func(w W)

func (f SystemFunc[W]) Update(w W) { f(w) }

// Scheduler runs systems in registration order.
type Scheduler[W any] struct {
	systems []System[W]
}

func NewScheduler[W any](systems ...System[W]) *Scheduler[W] {
	s := &Scheduler[W]{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler[W]) Add(system System[W]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once.
func (s *Scheduler[W]) Update(w W) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler[W]) Systems() []System[W] {
	systems := make([]System[W], 0, len(s.systems))
	return append(systems, s.systems...)
}
