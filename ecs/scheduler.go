package ecs

// System advances one concern of the world by one fixed tick.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in the order they were added, once per tick. The game
// registers input, character, fire, bullet, respawn and camera in that order,
// so events a system pushes are visible to the systems after it.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
