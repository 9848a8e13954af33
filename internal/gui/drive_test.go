package gui

import (
	"io"
	"log"
	"testing"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/input/inputtest"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeDriveInput struct {
	analog  map[input.Need]float32
	steer   float32
	pressed map[input.Need]bool
}

func (f *fakeDriveInput) AnalogSteering(player int) (float32, float32) {
	if player != 0 {
		return 0, 0
	}
	return f.steer, 0
}

func (f *fakeDriveInput) AnalogValue(n input.Need, player int, _ bool) float32 {
	if player != 0 {
		return 0
	}
	return f.analog[n]
}

func (f *fakeDriveInput) NeedPressedAny(n input.Need) bool { return f.pressed[n] }

func TestDriveSceneSeatsPlayers(t *testing.T) {
	d := newDriveScene(3, rl.NewRectangle(0, 0, 400, 300))
	if len(d.cars) != 3 {
		t.Fatalf("expected 3 cars, got %d", len(d.cars))
	}
	if d.cars[0].X != 100 || d.cars[2].X != 300 || d.cars[1].Y != 225 {
		t.Fatalf("unexpected grid %+v", d.cars)
	}
	if got := len(newDriveScene(9, rl.NewRectangle(0, 0, 400, 300)).cars); got != input.MaxLocalPlayers {
		t.Fatalf("expected cars capped at %d, got %d", input.MaxLocalPlayers, got)
	}
}

func TestDriveSceneThrottleAndSteering(t *testing.T) {
	d := newDriveScene(2, rl.NewRectangle(0, 0, 800, 600))
	in := &fakeDriveInput{analog: map[input.Need]float32{input.NeedForward: 1}}
	startY := d.cars[0].Y
	for i := 0; i < 30; i++ {
		if d.step(in, 1.0/60) {
			t.Fatalf("scene should not end while driving")
		}
	}
	if d.cars[0].Y >= startY || d.cars[0].Speed <= 0 {
		t.Fatalf("expected player 1 to drive up the screen, car %+v", d.cars[0])
	}
	if d.cars[1].Speed != 0 {
		t.Fatalf("player 2 gave no input but moved: %+v", d.cars[1])
	}

	heading := d.cars[0].Heading
	in.steer = 1
	d.step(in, 1.0/60)
	if d.cars[0].Heading <= heading {
		t.Fatalf("expected right steering to turn clockwise")
	}

	in.analog = map[input.Need]float32{input.NeedBrakes: 1}
	for i := 0; i < 120; i++ {
		d.step(in, 1.0/60)
	}
	if d.cars[0].Speed != 0 {
		t.Fatalf("expected brakes to stop the car, speed %v", d.cars[0].Speed)
	}
}

func TestDriveSceneStaysInsideBounds(t *testing.T) {
	bounds := rl.NewRectangle(10, 10, 200, 200)
	d := newDriveScene(1, bounds)
	in := &fakeDriveInput{analog: map[input.Need]float32{input.NeedForward: 1}}
	for i := 0; i < 600; i++ {
		d.step(in, 1.0/60)
	}
	c := d.cars[0]
	if c.Y < bounds.Y+carRadius || c.Y > bounds.Y+bounds.Height-carRadius {
		t.Fatalf("car left the track: %+v", c)
	}
}

func TestDriveSceneEndsOnPauseOnly(t *testing.T) {
	d := newDriveScene(1, rl.NewRectangle(0, 0, 100, 100))
	if d.step(&fakeDriveInput{pressed: map[input.Need]bool{input.NeedUIBack: true}}, 1.0/60) {
		t.Fatalf("UI back should not end the drive")
	}
	if !d.step(&fakeDriveInput{pressed: map[input.Need]bool{input.NeedUIPause: true}}, 1.0/60) {
		t.Fatalf("pause should end the drive")
	}
}

func TestGamepadBrakingKeepsDriving(t *testing.T) {
	be := inputtest.New()
	bindings := input.DefaultBindings()
	sys := input.NewSystem(be, &bindings, input.Config{Logger: log.New(io.Discard, "", 0)})
	pad := be.Plug(7)
	d := newDriveScene(1, rl.NewRectangle(0, 0, 800, 600))

	frame := func() bool {
		t.Helper()
		if err := sys.Poll(); err != nil {
			t.Fatalf("poll: %v", err)
		}
		return d.step(sys, 1.0/60)
	}

	pad.Buttons[input.PadA] = true
	for i := 0; i < 30; i++ {
		if frame() {
			t.Fatalf("throttle ended the drive")
		}
	}
	pad.Buttons[input.PadA] = false
	moving := d.cars[0].Speed
	if moving <= 0 {
		t.Fatalf("expected the pad to drive the car, speed %v", moving)
	}

	pad.Buttons[input.PadB] = true
	for i := 0; i < 10; i++ {
		if frame() {
			t.Fatalf("braking with the pad ended the drive")
		}
	}
	if d.cars[0].Speed >= moving {
		t.Fatalf("expected brakes to slow the car, %v -> %v", moving, d.cars[0].Speed)
	}
	pad.Buttons[input.PadB] = false
	frame()

	pad.Buttons[input.PadStart] = true
	if !frame() {
		t.Fatalf("start should pause out of the drive")
	}
}

func TestApproachZero(t *testing.T) {
	if approachZero(5, 2) != 3 || approachZero(1, 2) != 0 || approachZero(-5, 2) != -3 || approachZero(-1, 2) != 0 {
		t.Fatalf("approachZero misbehaves")
	}
}
