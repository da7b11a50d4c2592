package game

import (
	"math"

	"github.com/meghashyamc/pong2d/geometry"
)

const (
	defaultPaddleHeight = 80.0
	defaultPaddleWidth  = 20.0
	defaultPaddleSpeed  = 200.0 // pixels per second
	defaultPaddleOffset = 30.0  // distance from the side of the field to the paddle center
)

// Paddle only moves vertically. Position is the center of the rectangle.
type Paddle struct {
	Height        float64
	Width         float64
	Position      geometry.Vector2D
	Speed         float64
	VerticalLimit float64
}

func NewPaddle(height, width, x, verticalLimit float64) *Paddle {
	return &Paddle{
		Height:        height,
		Width:         width,
		Position:      geometry.Vector2D{X: x, Y: verticalLimit / 2},
		Speed:         defaultPaddleSpeed,
		VerticalLimit: verticalLimit,
	}
}

// Move displaces the paddle by whole pixels and keeps it inside the field.
func (p *Paddle) Move(delta float64, direction Direction) {
	distance := geometry.Round(delta * p.Speed)
	switch direction {
	case DirectionDown:
		p.Position.Y += distance
		p.Position.Y = math.Min(p.VerticalLimit-p.Height/2, p.Position.Y)
	case DirectionUp:
		p.Position.Y -= distance
		p.Position.Y = math.Max(p.Height/2, p.Position.Y)
	}
}

func (p *Paddle) Collider() geometry.Rect {
	return geometry.NewRect(p.Position, p.Width, p.Height)
}
