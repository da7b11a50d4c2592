package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/pong2d/game"
	"github.com/meghashyamc/pong2d/logger"
)

// Terminal draws a match with tcell. Events are read on their own goroutine
// and handed to the frame loop, which is the only code touching the match.
type Terminal struct {
	screen tcell.Screen
	match  *game.Match
	fps    int
	logger logger.Logger
}

func New(screen tcell.Screen, match *game.Match, fps int, log logger.Logger) *Terminal {
	if fps <= 0 {
		fps = 60
	}
	return &Terminal{
		screen: screen,
		match:  match,
		fps:    fps,
		logger: log,
	}
}

// Run blocks until ctx is cancelled, the player quits or the screen is finalized.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go t.pollEvents(ctx, events)

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	t.logger.Info("terminal loop started", "fps", t.fps)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.handleEvent(ev) {
				t.logger.Info("player quit", "score", t.match.Score())
				return nil
			}
		case now := <-ticker.C:
			t.match.Tick(now)
			t.draw()
		}
	}
}

func (t *Terminal) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent reports whether the player asked to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			t.match.KeyDown(game.DirectionUp)
		case tcell.KeyDown:
			t.match.KeyDown(game.DirectionDown)
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}
	}
	return false
}

func (t *Terminal) draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	drawScene(t.screen, t.match.Scene(), cols, rows)
	t.screen.Show()
}
