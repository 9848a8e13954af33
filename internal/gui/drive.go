package gui

import (
	"math"

	"github.com/appengine-ltd/retro-rally/internal/gui/theme"
	"github.com/appengine-ltd/retro-rally/internal/input"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	carAccel    = 260
	carReverse  = 140
	carDrag     = 1.2
	carBrake    = 600
	carMaxSpeed = 320
	carTurnRate = 3.2
	carRadius   = 12
)

type driveInput interface {
	AnalogSteering(player int) (x, y float32)
	AnalogValue(n input.Need, player int, raw bool) float32
	NeedPressedAny(input.Need) bool
}

type car struct {
	X, Y    float32
	Heading float32
	Speed   float32
}

// driveScene is the little arena local players drive around in after
// picking Play. Coordinates are screen pixels.
type driveScene struct {
	cars   []car
	bounds rl.Rectangle
}

func newDriveScene(players int, bounds rl.Rectangle) *driveScene {
	d := &driveScene{
		cars:   make([]car, min(max(players, 1), input.MaxLocalPlayers)),
		bounds: bounds,
	}
	spacing := bounds.Width / float32(len(d.cars)+1)
	for i := range d.cars {
		d.cars[i] = car{
			X:       bounds.X + spacing*float32(i+1),
			Y:       bounds.Y + bounds.Height*0.75,
			Heading: -math.Pi / 2,
		}
	}
	return d
}

// step advances every car by dt seconds and reports whether someone
// paused. UI back is not checked: pads share it with the brakes.
func (d *driveScene) step(in driveInput, dt float32) bool {
	if in.NeedPressedAny(input.NeedUIPause) {
		return true
	}
	for i := range d.cars {
		c := &d.cars[i]
		steer, _ := in.AnalogSteering(i)
		throttle := in.AnalogValue(input.NeedForward, i, false)
		reverse := in.AnalogValue(input.NeedBackward, i, false)
		brake := in.AnalogValue(input.NeedBrakes, i, false)

		c.Speed += (throttle*carAccel - reverse*carReverse) * dt
		c.Speed -= c.Speed * carDrag * dt
		if brake > 0 {
			c.Speed = approachZero(c.Speed, brake*carBrake*dt)
		}
		c.Speed = min(max(c.Speed, -carMaxSpeed/2), carMaxSpeed)

		// Steering authority grows with speed and flips in reverse.
		c.Heading += steer * carTurnRate * dt * min(c.Speed/100, 1)

		sin, cos := math.Sincos(float64(c.Heading))
		c.X += float32(cos) * c.Speed * dt
		c.Y += float32(sin) * c.Speed * dt
		d.keepInside(c)
	}
	return false
}

func (d *driveScene) keepInside(c *car) {
	minX, maxX := d.bounds.X+carRadius, d.bounds.X+d.bounds.Width-carRadius
	minY, maxY := d.bounds.Y+carRadius, d.bounds.Y+d.bounds.Height-carRadius
	if c.X < minX || c.X > maxX || c.Y < minY || c.Y > maxY {
		c.X = min(max(c.X, minX), maxX)
		c.Y = min(max(c.Y, minY), maxY)
		c.Speed *= -0.3
	}
}

func approachZero(v, by float32) float32 {
	if v > 0 {
		return max(v-by, 0)
	}
	return min(v+by, 0)
}

func (d *driveScene) draw(labels []string) {
	for i, c := range d.cars {
		clr := theme.PlayerColors[i%len(theme.PlayerColors)]
		rl.DrawCircleV(rl.NewVector2(c.X, c.Y), carRadius, clr)
		sin, cos := math.Sincos(float64(c.Heading))
		nose := rl.NewVector2(c.X+float32(cos)*carRadius*1.6, c.Y+float32(sin)*carRadius*1.6)
		rl.DrawLineEx(rl.NewVector2(c.X, c.Y), nose, 3, theme.TextPrimary)
		if i < len(labels) {
			theme.DrawTextCentered(labels[i], int32(c.X), int32(c.Y)-carRadius-theme.Type.Small-4, theme.Type.Small, clr)
		}
	}
}
