package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/runandgun/obj"
)

// pollHeld reads the buttons that are sampled every tick.
func pollHeld() obj.Input {
	var in obj.Input
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.MoveX += 1
	}
	in.AimUp = ebiten.IsKeyPressed(ebiten.KeyUp)
	in.AimDown = ebiten.IsKeyPressed(ebiten.KeyDown)
	in.Fire = ebiten.IsKeyPressed(ebiten.KeyF)

	// Gamepad: left stick and d-pad move, right trigger fires.
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			in.MoveX = -1
		} else if leftX > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			in.MoveX = 1
		}
		in.AimUp = in.AimUp || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftTop)
		in.AimDown = in.AimDown || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom)
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return in
}

var commandKeys = []struct {
	key    ebiten.Key
	button ebiten.StandardGamepadButton
	cmd    obj.Command
}{
	{ebiten.KeySpace, ebiten.StandardGamepadButtonRightBottom, obj.CommandJump},
	{ebiten.KeyD, ebiten.StandardGamepadButtonRightRight, obj.CommandDrop},
	{ebiten.KeyC, ebiten.StandardGamepadButtonRightLeft, obj.CommandToggleProne},
	{ebiten.KeyE, ebiten.StandardGamepadButtonRightTop, obj.CommandToggleAimUp},
}

// appendPressed appends the commands whose key went down this frame.
func appendPressed(dst []obj.Command) []obj.Command {
	ids := ebiten.AppendGamepadIDs(nil)
	for _, ck := range commandKeys {
		pressed := inpututil.IsKeyJustPressed(ck.key)
		if len(ids) > 0 {
			pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(ids[0], ck.button)
		}
		if pressed {
			dst = append(dst, ck.cmd)
		}
	}
	return dst
}
