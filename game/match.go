package game

import (
	"time"

	"github.com/meghashyamc/pong2d/logger"
)

// Match is the simulation loop. It is the only owner of the ball, the paddles,
// the controls and the score; it must be driven from a single goroutine.
type Match struct {
	settings Settings
	ball     *Ball
	paddles  [2]*Paddle
	controls Controls
	score    Score
	timer    *Timer
	cues     CuePlayer
	logger   logger.Logger
}

func NewMatch(settings Settings, cues CuePlayer, log logger.Logger, start time.Time) *Match {
	if cues == nil {
		cues = SilentPlayer{}
	}

	m := &Match{
		settings: settings,
		ball:     NewBall(settings.BallSize, settings.FieldWidth, settings.FieldHeight),
		paddles: [2]*Paddle{
			NewPaddle(settings.PaddleHeight, settings.PaddleWidth, settings.PaddleOffset, settings.FieldHeight),
			NewPaddle(settings.PaddleHeight, settings.PaddleWidth, settings.FieldWidth-settings.PaddleOffset, settings.FieldHeight),
		},
		timer:  NewTimer(start),
		cues:   cues,
		logger: log,
	}
	m.paddles[0].Speed = settings.PaddleSpeed
	m.paddles[1].Speed = settings.PaddleSpeed

	m.logger.Info("match initialized",
		"fieldWidth", settings.FieldWidth,
		"fieldHeight", settings.FieldHeight,
		"ballSize", settings.BallSize,
		"paddleSpeed", settings.PaddleSpeed,
	)
	return m
}

// KeyDown feeds a key press from the player into the controls.
func (m *Match) KeyDown(direction Direction) {
	m.controls.SetDirection(direction)
}

// Tick runs one frame using the wall-clock time since the previous tick.
func (m *Match) Tick(now time.Time) {
	m.Step(m.timer.Update(now))
}

// Step advances the match by delta seconds. Paddles move once over the whole
// delta; the ball moves in quanta so that it cannot skip over a paddle.
func (m *Match) Step(delta float64) {
	directions := [2]Direction{m.controls.Direction(), m.computerDirection()}

	m.paddles[0].Move(delta, directions[0])
	m.paddles[1].Move(delta, directions[1])

	whole, remainder := substeps(delta)
	for i := 0; i < whole; i++ {
		m.resolve(m.ball.Move(quantum, m.paddles))
	}
	m.resolve(m.ball.Move(remainder, m.paddles))
}

// computerDirection follows the ball. When the ball spans the paddle center
// both checks pass and down wins.
func (m *Match) computerDirection() Direction {
	direction := DirectionNone
	half := m.ball.Size / 2
	if m.ball.Position.Y-half <= m.paddles[1].Position.Y {
		direction = DirectionUp
	}
	if m.ball.Position.Y+half >= m.paddles[1].Position.Y {
		direction = DirectionDown
	}
	return direction
}

func (m *Match) resolve(outcome Outcome) {
	switch outcome {
	case OutcomeLeft:
		m.goal(SideRight, DirectionRight)
	case OutcomeRight:
		m.goal(SideLeft, DirectionLeft)
	case OutcomeUp, OutcomeDown:
		m.cues.Play(CueWall)
	case OutcomePaddle:
		m.cues.Play(CueHit)
		m.logger.Debug("paddle hit", "ballSpeed", m.ball.Speed, "ballMovement", m.ball.Movement)
	}
}

// goal scores for side and serves away from it.
func (m *Match) goal(side int, serve Direction) {
	m.score.Point(side)
	m.ball.Open(serve)
	m.cues.Play(CueGoal)
	m.logger.Debug("goal", "side", side, "score", m.score, "serve", serve.String())
}

func (m *Match) Score() Score {
	return m.score
}

func (m *Match) Ball() *Ball {
	return m.ball
}

func (m *Match) Paddles() [2]*Paddle {
	return m.paddles
}

func (m *Match) Controls() Controls {
	return m.controls
}

func (m *Match) LastTick() time.Time {
	return m.timer.LastTick()
}
