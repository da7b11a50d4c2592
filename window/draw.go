package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/pong2d/assets"
	"github.com/meghashyamc/pong2d/game"
	"github.com/meghashyamc/pong2d/geometry"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	foregroundColor = color.White
)

func drawScene(screen *ebiten.Image, scene game.Scene) {
	screen.Fill(backgroundColor)

	for _, segment := range scene.Midline {
		vector.StrokeLine(screen,
			float32(segment.From.X), float32(segment.From.Y),
			float32(segment.To.X), float32(segment.To.Y),
			float32(scene.MidlineWidth), foregroundColor, false)
	}

	for _, label := range scene.Scores {
		drawScore(screen, label)
	}

	for _, paddle := range scene.Paddles {
		fillRect(screen, paddle)
	}
	fillRect(screen, scene.Ball)
}

func fillRect(screen *ebiten.Image, rect geometry.Rect) {
	vector.DrawFilledRect(screen,
		float32(rect.Left()), float32(rect.Top()),
		float32(rect.Width), float32(rect.Height),
		foregroundColor, false)
}

// drawScore places the text so that its baseline sits on the label anchor.
func drawScore(screen *ebiten.Image, label game.ScoreLabel) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(label.Anchor.X, label.Anchor.Y-assets.ScoreFont.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(foregroundColor)
	text.Draw(screen, label.Text, assets.ScoreFont, op)
}
