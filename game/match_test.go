package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/meghashyamc/pong2d/geometry"
	"github.com/meghashyamc/pong2d/logger"
)

type cueRecorder struct {
	played []Cue
}

func (r *cueRecorder) Play(cue Cue) {
	r.played = append(r.played, cue)
}

func (r *cueRecorder) count(cue Cue) int {
	n := 0
	for _, c := range r.played {
		if c == cue {
			n++
		}
	}
	return n
}

var matchStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestMatch() (*Match, *cueRecorder) {
	recorder := &cueRecorder{}
	return NewMatch(DefaultSettings(), recorder, logger.Discard(), matchStart), recorder
}

func TestSubsteps(t *testing.T) {
	testCases := []struct {
		delta         float64
		wantWhole     int
		wantRemainder float64
	}{
		{0.013, 2, 0.003},
		{0.016, 3, 0.001},
		{0.0049, 0, 0.0049},
		{0, 0, 0},
		{0.0205, 4, 0.0005},
	}

	for _, tc := range testCases {
		whole, remainder := substeps(tc.delta)
		if whole != tc.wantWhole {
			t.Errorf("substeps(%v) whole = %d, want %d", tc.delta, whole, tc.wantWhole)
		}
		if math.Abs(remainder-tc.wantRemainder) > epsilon {
			t.Errorf("substeps(%v) remainder = %v, want %v", tc.delta, remainder, tc.wantRemainder)
		}
	}
}

func TestStepSubstepsMatchSingleIntegration(t *testing.T) {
	m, _ := newTestMatch()
	m.ball.Movement = geometry.Vector2D{X: -240, Y: 180}
	single := *m.ball

	m.Step(0.013)
	single.Move(0.013, m.paddles)

	if math.Abs(m.ball.Position.X-single.Position.X) > epsilon || math.Abs(m.ball.Position.Y-single.Position.Y) > epsilon {
		t.Fatalf("substepped position = %v, single step position = %v", m.ball.Position, single.Position)
	}
	if math.Abs(m.ball.Position.X-(400-240*0.013)) > epsilon {
		t.Fatalf("x = %v, want %v", m.ball.Position.X, 400-240*0.013)
	}
}

func TestStepDoesNotTunnelThroughPaddle(t *testing.T) {
	m, recorder := newTestMatch()
	m.ball.Position = geometry.Vector2D{X: 60, Y: 250}
	m.ball.Movement = geometry.Vector2D{X: -1000, Y: 0}
	m.ball.Speed = 1000

	// a single 0.05s integration would jump 50 pixels, straight over the paddle
	m.Step(0.05)

	if recorder.count(CueHit) != 1 {
		t.Fatalf("hit cues = %d, want 1 (played %v)", recorder.count(CueHit), recorder.played)
	}
	if m.ball.Movement.X <= 0 {
		t.Fatalf("movement.x = %v, want the ball bounced back", m.ball.Movement.X)
	}
	if m.score != (Score{0, 0}) {
		t.Fatalf("score = %v, want no goal", m.score)
	}
}

func TestTickUsesElapsedTime(t *testing.T) {
	m, _ := newTestMatch()

	m.Tick(matchStart.Add(13 * time.Millisecond))
	if math.Abs(m.ball.Position.X-(400-300*0.013)) > epsilon {
		t.Fatalf("x = %v, want %v", m.ball.Position.X, 400-300*0.013)
	}
	if !m.LastTick().Equal(matchStart.Add(13 * time.Millisecond)) {
		t.Fatalf("last tick = %v, want start+13ms", m.LastTick())
	}

	m.Tick(matchStart.Add(33 * time.Millisecond))
	if math.Abs(m.ball.Position.X-(400-300*0.033)) > 1e-6 {
		t.Fatalf("x = %v, want %v", m.ball.Position.X, 400-300*0.033)
	}
}

func TestLeftGoalScoresForRightAndServesRight(t *testing.T) {
	m, recorder := newTestMatch()
	m.ball.Position = geometry.Vector2D{X: 8, Y: 100}

	m.Step(0.005)

	if m.score != (Score{0, 1}) {
		t.Fatalf("score = %v, want [0 1]", m.score)
	}
	if m.ball.Movement.X <= 0 || m.ball.Speed != 300 {
		t.Fatalf("movement = %v speed = %v, want a serve to the right at 300", m.ball.Movement, m.ball.Speed)
	}
	if m.ball.Position != (geometry.Vector2D{X: 400, Y: 250}) {
		t.Fatalf("position = %v, want field center", m.ball.Position)
	}
	if recorder.count(CueGoal) != 1 {
		t.Fatalf("goal cues = %d, want 1", recorder.count(CueGoal))
	}
}

func TestRightGoalScoresForLeftAndServesLeft(t *testing.T) {
	m, recorder := newTestMatch()
	m.ball.Open(DirectionRight)
	m.ball.Position = geometry.Vector2D{X: 792, Y: 100}

	m.Step(0.005)

	if m.score != (Score{1, 0}) {
		t.Fatalf("score = %v, want [1 0]", m.score)
	}
	if m.ball.Movement.X >= 0 {
		t.Fatalf("movement = %v, want a serve to the left", m.ball.Movement)
	}
	if recorder.count(CueGoal) != 1 {
		t.Fatalf("goal cues = %d, want 1", recorder.count(CueGoal))
	}
}

func TestScoreAccumulates(t *testing.T) {
	m, _ := newTestMatch()

	for i := 0; i < 3; i++ {
		m.ball.Position = geometry.Vector2D{X: 8, Y: 100}
		m.ball.Movement = geometry.Vector2D{X: -300, Y: 0}
		m.Step(0.005)
	}
	m.ball.Position = geometry.Vector2D{X: 792, Y: 100}
	m.ball.Movement = geometry.Vector2D{X: 300, Y: 0}
	m.Step(0.005)

	if m.Score() != (Score{1, 3}) {
		t.Fatalf("score = %v, want [1 3]", m.Score())
	}
}

func TestWallAndPaddleCues(t *testing.T) {
	m, recorder := newTestMatch()
	m.ball.Position = geometry.Vector2D{X: 400, Y: 8}
	m.ball.Movement = geometry.Vector2D{X: -259.81, Y: -150}

	m.Step(0.005)
	if recorder.count(CueWall) != 1 {
		t.Fatalf("wall cues = %d, want 1 (played %v)", recorder.count(CueWall), recorder.played)
	}

	m.ball.Position = geometry.Vector2D{X: 48, Y: m.paddles[0].Position.Y}
	m.ball.Movement = geometry.Vector2D{X: -300, Y: 0}
	m.Step(0.005)
	if recorder.count(CueHit) != 1 {
		t.Fatalf("hit cues = %d, want 1 (played %v)", recorder.count(CueHit), recorder.played)
	}
}

func TestPlayerPaddleFollowsControls(t *testing.T) {
	m, _ := newTestMatch()

	m.Step(0.05)
	if m.paddles[0].Position.Y != 250 {
		t.Fatalf("y without input = %v, want 250", m.paddles[0].Position.Y)
	}

	m.KeyDown(DirectionUp)
	m.Step(0.05)
	if m.paddles[0].Position.Y != 240 {
		t.Fatalf("y after up = %v, want 240", m.paddles[0].Position.Y)
	}

	// the direction persists without further key presses
	m.Step(0.05)
	if m.paddles[0].Position.Y != 230 {
		t.Fatalf("y after second frame = %v, want 230", m.paddles[0].Position.Y)
	}

	m.KeyDown(DirectionDown)
	m.Step(0.05)
	if m.paddles[0].Position.Y != 240 {
		t.Fatalf("y after down = %v, want 240", m.paddles[0].Position.Y)
	}
	if c := m.Controls(); c.Up || !c.Down {
		t.Fatalf("controls = %+v, want down only", c)
	}
}

func TestComputerPaddleTracksBall(t *testing.T) {
	testCases := []struct {
		name  string
		ballY float64
		want  Direction
	}{
		{"ball above", 100, DirectionUp},
		{"ball below", 400, DirectionDown},
		{"ball across the center prefers down", 250, DirectionDown},
		{"ball top exactly at the center", 257.5, DirectionDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestMatch()
			m.ball.Position.Y = tc.ballY
			if got := m.computerDirection(); got != tc.want {
				t.Errorf("direction = %v, want %v", got, tc.want)
			}
		})
	}

	m, _ := newTestMatch()
	m.ball.Position = geometry.Vector2D{X: 400, Y: 100}
	m.ball.Movement = geometry.Vector2D{X: 0.001, Y: 0}
	m.Step(0.05)
	if m.paddles[1].Position.Y != 240 {
		t.Fatalf("computer paddle y = %v, want 240", m.paddles[1].Position.Y)
	}
}

func TestLongMatchStaysFinite(t *testing.T) {
	m, recorder := newTestMatch()
	rng := rand.New(rand.NewSource(7))
	now := matchStart

	for i := 0; i < 20000; i++ {
		if i%40 == 0 {
			if rng.Intn(2) == 0 {
				m.KeyDown(DirectionUp)
			} else {
				m.KeyDown(DirectionDown)
			}
		}
		now = now.Add(time.Duration(5+rng.Intn(30)) * time.Millisecond)
		m.Tick(now)

		b := m.ball
		for _, v := range []float64{b.Position.X, b.Position.Y, b.Movement.X, b.Movement.Y, b.Speed} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("frame %d: non-finite ball state %+v", i, *b)
			}
		}
		for side, p := range m.paddles {
			if p.Position.Y < p.Height/2 || p.Position.Y > p.VerticalLimit-p.Height/2 {
				t.Fatalf("frame %d: paddle %d at y=%v outside the field", i, side, p.Position.Y)
			}
		}
		if b.Position.Y < b.Size/2 || b.Position.Y > b.VerticalLimit-b.Size/2 {
			t.Fatalf("frame %d: ball at y=%v outside the field", i, b.Position.Y)
		}
		if angle := openingAngle(b.Movement.Angle()); math.Abs(angle) > b.MaximumOpening {
			t.Fatalf("frame %d: ball angle %v beyond the maximum opening", i, angle)
		}
		if math.Abs(b.Movement.Length()-b.Speed) > 0.05 {
			t.Fatalf("frame %d: |movement| = %v, speed = %v", i, b.Movement.Length(), b.Speed)
		}
	}

	if len(recorder.played) == 0 {
		t.Fatal("expected some cues over a long match")
	}
}

func TestTimerUpdate(t *testing.T) {
	timer := NewTimer(matchStart)

	if got := timer.Update(matchStart.Add(16 * time.Millisecond)); math.Abs(got-0.016) > epsilon {
		t.Fatalf("first delta = %v, want 0.016", got)
	}
	if got := timer.Update(matchStart.Add(50 * time.Millisecond)); math.Abs(got-0.034) > epsilon {
		t.Fatalf("second delta = %v, want 0.034", got)
	}
	if !timer.LastTick().Equal(matchStart.Add(50 * time.Millisecond)) {
		t.Fatalf("last tick = %v, want start+50ms", timer.LastTick())
	}
}
