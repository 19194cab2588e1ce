package system

import (
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
)

// InputApplySystem hands the sampled input to each player's character. Queued
// commands are moved onto the character once and cleared.
type InputApplySystem struct{}

func NewInputApplySystem() *InputApplySystem { return &InputApplySystem{} }

func (s *InputApplySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, p *component.Player, in *component.Input) {
		if p.Character == nil {
			return
		}
		p.Character.SetInput(in.Held)
		for _, cmd := range in.Commands {
			p.Character.Queue(cmd)
		}
		in.Commands = in.Commands[:0]
	})
}
