package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/ecs/system"
)

// deviceInput reads the keyboard and the first standard-layout gamepad.
// Keyboard input wins on any axis it drives.
type deviceInput struct {
	gamepads []ebiten.GamepadID
}

func newDeviceInput() *deviceInput {
	return &deviceInput{}
}

func (d *deviceInput) Axes() component.Input {
	in := component.Input{
		Thrust:    keyAxis(ebiten.KeyW, ebiten.KeyS) + keyAxis(ebiten.KeyArrowUp, ebiten.KeyArrowDown),
		MoveUp:    keyAxis(ebiten.KeySpace, ebiten.KeyC),
		MoveRight: keyAxis(ebiten.KeyD, ebiten.KeyA),
	}

	id, ok := d.gamepad()
	if !ok {
		return in
	}
	if in.Thrust == 0 {
		in.Thrust = ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight) -
			ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	}
	if in.MoveUp == 0 {
		// stick up reads negative
		in.MoveUp = -system.ApplyDeadZone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical), system.StickDeadZone)
	}
	if in.MoveRight == 0 {
		in.MoveRight = system.ApplyDeadZone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), system.StickDeadZone)
	}
	return in
}

// PausePressed reports Escape or the gamepad Start button this frame.
func (d *deviceInput) PausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	id, ok := d.gamepad()
	return ok && inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
}

func (d *deviceInput) gamepad() (ebiten.GamepadID, bool) {
	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	for _, id := range d.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func keyAxis(pos, neg ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	return v
}
