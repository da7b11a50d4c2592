package game

import "github.com/meghashyamc/pong2d/config"

// Settings holds the dimensions a match is built from.
type Settings struct {
	FieldWidth   float64
	FieldHeight  float64
	BallSize     float64
	PaddleHeight float64
	PaddleWidth  float64
	PaddleOffset float64
	PaddleSpeed  float64
}

func DefaultSettings() Settings {
	return Settings{
		FieldWidth:   800,
		FieldHeight:  500,
		BallSize:     defaultBallSize,
		PaddleHeight: defaultPaddleHeight,
		PaddleWidth:  defaultPaddleWidth,
		PaddleOffset: defaultPaddleOffset,
		PaddleSpeed:  defaultPaddleSpeed,
	}
}

func NewSettings(cfg *config.Config) Settings {
	return Settings{
		FieldWidth:   cfg.GetFieldWidth(),
		FieldHeight:  cfg.GetFieldHeight(),
		BallSize:     cfg.GetBallSize(),
		PaddleHeight: cfg.GetPaddleHeight(),
		PaddleWidth:  cfg.GetPaddleWidth(),
		PaddleOffset: cfg.GetPaddleOffset(),
		PaddleSpeed:  cfg.GetPaddleSpeed(),
	}
}
