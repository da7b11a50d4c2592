package window

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/pong2d/config"
	"github.com/meghashyamc/pong2d/game"
	"github.com/meghashyamc/pong2d/logger"
)

var errQuit = errors.New("quit requested")

// Game drives a match from ebiten's frame callbacks. ebiten calls Update and
// Draw from the same goroutine, so the match has a single owner.
type Game struct {
	cfg      *config.Config
	match    *game.Match
	settings game.Settings
	logger   logger.Logger
}

func NewGame(cfg *config.Config, log logger.Logger) (*Game, error) {
	cues := newCuePlayer(cfg, log)

	settings := game.NewSettings(cfg)
	g := &Game{
		cfg:      cfg,
		match:    game.NewMatch(settings, cues, log, time.Now()),
		settings: settings,
		logger:   log,
	}

	g.logger.Info("window game initialized", "width", cfg.GetWindowWidth(), "height", cfg.GetWindowHeight())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	err := ebiten.RunGame(g)
	if errors.Is(err, errQuit) {
		g.logger.Info("game closed", "score", g.match.Score())
		return nil
	}
	return err
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	// only key presses count, releasing a key keeps the paddle going
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.match.KeyDown(game.DirectionUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.match.KeyDown(game.DirectionDown)
	}

	g.match.Tick(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.match.Scene())
}

// Layout keeps the field size whatever the window size is; ebiten scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.settings.FieldWidth), int(g.settings.FieldHeight)
}
