package system

import (
	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/obj"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward the player's frame center, leading in the
// facing direction, and keeps the view inside the level bounds.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	_, p, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok || p.Character == nil {
		return
	}

	frame := p.Character.FrameRect()
	lead := cam.LookOffset
	if p.Character.Facing == obj.FacingLeft {
		lead = -lead
	}
	targetX := frame.CenterX() + lead - cam.Width/2
	targetY := frame.CenterY() - cam.Height/2

	t := cam.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	cam.X = common.Lerp(cam.X, targetX, t)
	cam.Y = common.Lerp(cam.Y, targetY, t)

	if _, lb, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		cam.X = clampView(cam.X, cam.Width, lb.Width)
		cam.Y = clampView(cam.Y, cam.Height, lb.Height)
	}
}

// clampView keeps [pos, pos+view] inside [0, limit]; views larger than the
// level are pinned to the origin.
func clampView(pos, view, limit float64) float64 {
	if limit <= view {
		return 0
	}
	return common.Clamp(pos, 0, limit-view)
}
