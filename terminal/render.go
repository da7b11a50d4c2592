package terminal

import (
	"cmp"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/pong2d/game"
	"github.com/meghashyamc/pong2d/geometry"
)

const (
	runePaddle  = '█'
	runeBall    = '●'
	runeMidline = '┃'
)

var styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// projection maps field pixels onto terminal cells.
type projection struct {
	scaleX float64
	scaleY float64
	cols   int
	rows   int
}

func newProjection(scene game.Scene, cols, rows int) projection {
	return projection{
		scaleX: float64(cols) / scene.Width,
		scaleY: float64(rows) / scene.Height,
		cols:   cols,
		rows:   rows,
	}
}

func (p projection) col(x float64) int {
	return clampValue(int(math.Floor(x*p.scaleX)), 0, p.cols-1)
}

func (p projection) row(y float64) int {
	return clampValue(int(math.Floor(y*p.scaleY)), 0, p.rows-1)
}

// span returns the first and last cell covered by [from, to), at least one cell.
func span(from, to, scale float64, limit int) (int, int) {
	first := clampValue(int(math.Floor(from*scale)), 0, limit-1)
	last := clampValue(int(math.Ceil(to*scale))-1, 0, limit-1)
	if last < first {
		last = first
	}
	return first, last
}

func drawScene(screen tcell.Screen, scene game.Scene, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	p := newProjection(scene, cols, rows)

	for _, segment := range scene.Midline {
		first, last := span(segment.From.Y, segment.To.Y, p.scaleY, rows)
		x := p.col(segment.From.X)
		for y := first; y <= last; y++ {
			screen.SetContent(x, y, runeMidline, nil, styleDefault)
		}
	}

	for _, paddle := range scene.Paddles {
		fillRect(screen, p, paddle, runePaddle)
	}
	fillRect(screen, p, scene.Ball, runeBall)

	// the anchor is a baseline, the glyphs sit on the row above it
	for _, label := range scene.Scores {
		x := p.col(label.Anchor.X)
		y := clampValue(p.row(label.Anchor.Y)-1, 0, rows-1)
		for i, r := range label.Text {
			if x+i < cols {
				screen.SetContent(x+i, y, r, nil, styleDefault.Bold(true))
			}
		}
	}
}

func fillRect(screen tcell.Screen, p projection, rect geometry.Rect, r rune) {
	left, right := span(rect.Left(), rect.Right(), p.scaleX, p.cols)
	top, bottom := span(rect.Top(), rect.Bottom(), p.scaleY, p.rows)
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			screen.SetContent(x, y, r, nil, styleDefault)
		}
	}
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
