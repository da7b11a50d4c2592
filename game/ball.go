package game

import (
	"github.com/meghashyamc/pong2d/geometry"
)

const (
	serveSpeed            = 300.0 // pixels per second after every serve
	paddleSpeedIncrease   = 10.0
	defaultMaximumOpening = 60.0 // degrees from the horizontal
	defaultBallSize       = 15.0
)

// Outcome classifies what happened to the ball during a single move.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLeft
	OutcomeRight
	OutcomeUp
	OutcomeDown
	OutcomePaddle
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLeft:
		return "left"
	case OutcomeRight:
		return "right"
	case OutcomeUp:
		return "up"
	case OutcomeDown:
		return "down"
	case OutcomePaddle:
		return "paddle"
	}
	return "none"
}

// Ball has a square hit box of side Size. Movement carries both the direction
// and the speed: its length equals Speed outside of a paddle deflection.
type Ball struct {
	Size            float64
	Position        geometry.Vector2D
	Movement        geometry.Vector2D
	Speed           float64
	MaximumOpening  float64
	HorizontalLimit float64
	VerticalLimit   float64
}

// NewBall creates a ball in the middle of the field, already served to the left.
func NewBall(size, horizontalLimit, verticalLimit float64) *Ball {
	ball := &Ball{
		Size:            size,
		Position:        geometry.Vector2D{X: horizontalLimit / 2, Y: verticalLimit / 2},
		Speed:           serveSpeed,
		MaximumOpening:  defaultMaximumOpening,
		HorizontalLimit: horizontalLimit,
		VerticalLimit:   verticalLimit,
	}
	ball.Open(DirectionLeft)
	return ball
}

func (b *Ball) Collider() geometry.Rect {
	return geometry.NewRect(b.Position, b.Size, b.Size)
}

// Crash reports whether the ball overlaps the paddle.
func (b *Ball) Crash(paddle *Paddle) bool {
	return b.Collider().Intersects(paddle.Collider())
}

func (b *Ball) IncreaseSpeed(increase float64) {
	b.Speed += increase
	b.Movement.Normalize()
	b.Movement.MultiplyByAScalar(b.Speed)
}

// Move advances the ball by delta seconds and resolves collisions with the
// field and the paddles. When several things happen in the same move only the
// last one checked is reported: sides, then top, then bottom, then paddles.
// Goals do not stop the ball; the caller is expected to Open it again.
func (b *Ball) Move(delta float64, paddles [2]*Paddle) Outcome {
	half := b.Size / 2
	result := OutcomeNone

	// fallback used by the deflection clamp below
	temp := b.Movement
	temp.MultiplyByAScalar(delta)
	b.Position = b.Position.Add(temp)

	if b.Position.X-half < 0 {
		result = OutcomeLeft
	}
	if b.Position.X+half > b.HorizontalLimit {
		result = OutcomeRight
	}
	if b.Position.Y-half < 0 {
		b.Position.Y = half
		b.Movement.Y *= -1
		result = OutcomeUp
	}
	if b.Position.Y+half > b.VerticalLimit {
		b.Position.Y = b.VerticalLimit - half
		b.Movement.Y *= -1
		result = OutcomeDown
	}

	// The vertical offset between ball and paddle, in pixels, is used as the
	// rotation in degrees.
	if b.Movement.X < 0 && b.Crash(paddles[0]) {
		b.Movement.X *= -1
		b.IncreaseSpeed(paddleSpeedIncrease)
		temp = b.Movement
		b.Movement.Rotate(b.Position.Y - paddles[0].Position.Y)
		result = OutcomePaddle
	} else if b.Movement.X > 0 && b.Crash(paddles[1]) {
		b.Movement.X *= -1
		b.IncreaseSpeed(paddleSpeedIncrease)
		temp = b.Movement
		b.Movement.Rotate(paddles[1].Position.Y - b.Position.Y)
		result = OutcomePaddle
	}

	angle := openingAngle(b.Movement.Angle())
	if angle > b.MaximumOpening || angle < -b.MaximumOpening {
		b.Movement = temp
	}

	return result
}

// Open puts the ball back in the center and serves it towards direction.
func (b *Ball) Open(direction Direction) {
	side := 0.0
	switch direction {
	case DirectionLeft:
		side = -1
	case DirectionRight:
		side = 1
	}
	b.Position.X = b.HorizontalLimit / 2
	b.Position.Y = b.VerticalLimit / 2
	b.Speed = serveSpeed
	b.Movement.X = side * b.Speed
	b.Movement.Y = 0
}

// openingAngle folds an angle in degrees into its signed distance from the
// horizontal axis, whichever way the ball is travelling.
func openingAngle(angle float64) float64 {
	if angle >= 180 {
		angle -= 180
	}
	if angle > 90 {
		angle = 180 - angle
	}
	if angle <= -180 {
		angle += 180
	}
	if angle < -90 {
		angle = -180 - angle
	}
	return angle
}
