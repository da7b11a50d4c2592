package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/meghashyamc/pong2d/config"
	"github.com/meghashyamc/pong2d/game"
	"github.com/meghashyamc/pong2d/logger"
	"github.com/meghashyamc/pong2d/terminal"
	"github.com/meghashyamc/pong2d/window"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	if addr := cfg.GetStatsviewAddr(); addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	switch cfg.GetFrontend() {
	case config.FrontendTerminal:
		err = runTerminal(cfg)
	default:
		err = runWindow(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running game: %s\n", err)
		os.Exit(1)
	}
}

func runWindow(cfg *config.Config) error {
	log := logger.NewWithLevel(cfg.GetLogLevel())
	g, err := window.NewGame(cfg, log)
	if err != nil {
		return err
	}
	if err := g.Run(); err != nil {
		log.Error("error running game", "err", err)
		return err
	}
	return nil
}

// runTerminal keeps logs off the terminal it draws on: they go to the
// configured log file, or nowhere.
func runTerminal(cfg *config.Config) error {
	var out io.Writer = io.Discard
	if path := cfg.GetLogFile(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logger.NewWithWriter(out, cfg.GetLogLevel())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	cues := terminal.NewCuePlayer(cfg, log)
	defer terminal.CloseAudio(cues)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	match := game.NewMatch(game.NewSettings(cfg), cues, log, time.Now())
	return terminal.New(screen, match, cfg.GetTerminalFPS(), log).Run(ctx)
}
