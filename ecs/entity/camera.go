package entity

import (
	"fmt"

	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/prefabs"
)

// NewCamera creates the camera entity with a width x height view.
func NewCamera(w *ecs.World, width, height float64) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	smooth := cameraSpec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Width:      width,
		Height:     height,
		Smoothness: smooth,
		LookOffset: cameraSpec.LookOffset,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
