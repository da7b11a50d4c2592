package game

import (
	"github.com/meghashyamc/pong2d/geometry"
)

const (
	midlinePieces = 31
	midlineWidth  = 10
	scoreBaseline = 40
)

// Segment is a straight stroke between two points.
type Segment struct {
	From geometry.Vector2D
	To   geometry.Vector2D
}

// ScoreLabel is drawn with its text baseline starting at Anchor.
type ScoreLabel struct {
	Text   string
	Anchor geometry.Vector2D
}

// Scene is everything a renderer needs to draw one frame.
type Scene struct {
	Width        float64
	Height       float64
	Midline      []Segment
	MidlineWidth float64
	Paddles      [2]geometry.Rect
	Ball         geometry.Rect
	Scores       [2]ScoreLabel
}

// Scene takes a snapshot of the match for the renderer.
func (m *Match) Scene() Scene {
	return Scene{
		Width:        m.settings.FieldWidth,
		Height:       m.settings.FieldHeight,
		Midline:      midline(m.settings.FieldWidth, m.settings.FieldHeight),
		MidlineWidth: midlineWidth,
		Paddles:      [2]geometry.Rect{m.paddles[0].Collider(), m.paddles[1].Collider()},
		Ball:         m.ball.Collider(),
		Scores: [2]ScoreLabel{
			{Text: m.score.Text(SideLeft), Anchor: geometry.Vector2D{X: m.settings.FieldWidth/2 - 80, Y: scoreBaseline}},
			{Text: m.score.Text(SideRight), Anchor: geometry.Vector2D{X: m.settings.FieldWidth/2 + 20, Y: scoreBaseline}},
		},
	}
}

// midline is the dashed net: every other piece of the field height is drawn.
func midline(width, height float64) []Segment {
	x := geometry.Round(width / 2)
	piece := geometry.Round(height / midlinePieces)

	segments := make([]Segment, 0, midlinePieces/2+1)
	for i := 0; i < midlinePieces; i += 2 {
		segments = append(segments, Segment{
			From: geometry.Vector2D{X: x, Y: piece * float64(i)},
			To:   geometry.Vector2D{X: x, Y: piece * float64(i+1)},
		})
	}
	return segments
}
