package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if frontend := cfg.GetFrontend(); frontend != FrontendWindow && frontend != FrontendTerminal {
		return nil, fmt.Errorf("unknown frontend %q, expected %q or %q", frontend, FrontendWindow, FrontendTerminal)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 500)
	v.SetDefault("window.title", "Pong")
	v.SetDefault("field.width", 800)
	v.SetDefault("field.height", 500)
	v.SetDefault("ball.size", 15)
	v.SetDefault("paddle.height", 80)
	v.SetDefault("paddle.width", 20)
	v.SetDefault("paddle.offset", 30)
	v.SetDefault("paddle.speed", 200)
	v.SetDefault("frontend", FrontendWindow)
	v.SetDefault("terminal.fps", 60)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("audio.samplerate", 48000)
	v.SetDefault("log.level", "info")
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

// GetFieldWidth is the width of the playing field in game pixels, independent of the window size.
func (c *Config) GetFieldWidth() float64 {
	fieldWidth := c.config.GetFloat64("FIELD_WIDTH")
	if fieldWidth == 0 {
		fieldWidth = c.config.GetFloat64("field.width")
	}

	return fieldWidth
}

func (c *Config) GetFieldHeight() float64 {
	fieldHeight := c.config.GetFloat64("FIELD_HEIGHT")
	if fieldHeight == 0 {
		fieldHeight = c.config.GetFloat64("field.height")
	}

	return fieldHeight
}

func (c *Config) GetBallSize() float64 {
	ballSize := c.config.GetFloat64("BALL_SIZE")
	if ballSize == 0 {
		ballSize = c.config.GetFloat64("ball.size")
	}

	return ballSize
}

func (c *Config) GetPaddleHeight() float64 {
	paddleHeight := c.config.GetFloat64("PADDLE_HEIGHT")
	if paddleHeight == 0 {
		paddleHeight = c.config.GetFloat64("paddle.height")
	}

	return paddleHeight
}

func (c *Config) GetPaddleWidth() float64 {
	paddleWidth := c.config.GetFloat64("PADDLE_WIDTH")
	if paddleWidth == 0 {
		paddleWidth = c.config.GetFloat64("paddle.width")
	}

	return paddleWidth
}

// GetPaddleOffset is the distance between a side of the field and the center of its paddle.
func (c *Config) GetPaddleOffset() float64 {
	paddleOffset := c.config.GetFloat64("PADDLE_OFFSET")
	if paddleOffset == 0 {
		paddleOffset = c.config.GetFloat64("paddle.offset")
	}

	return paddleOffset
}

func (c *Config) GetPaddleSpeed() float64 {
	paddleSpeed := c.config.GetFloat64("PADDLE_SPEED")
	if paddleSpeed == 0 {
		paddleSpeed = c.config.GetFloat64("paddle.speed")
	}

	return paddleSpeed
}

func (c *Config) GetFrontend() string {
	frontend := c.config.GetString("FRONTEND")
	if len(frontend) == 0 {
		frontend = c.config.GetString("frontend")
	}

	return frontend
}

func (c *Config) GetTerminalFPS() int {
	fps := c.config.GetInt("TERMINAL_FPS")
	if fps == 0 {
		fps = c.config.GetInt("terminal.fps")
	}

	return fps
}

// GetAudioEnabled lets AUDIO_ENABLED=false switch sound off even when the file enables it.
func (c *Config) GetAudioEnabled() bool {
	if c.config.IsSet("AUDIO_ENABLED") {
		return c.config.GetBool("AUDIO_ENABLED")
	}

	return c.config.GetBool("audio.enabled")
}

func (c *Config) GetAudioVolume() float64 {
	volume := c.config.GetFloat64("AUDIO_VOLUME")
	if volume == 0 {
		volume = c.config.GetFloat64("audio.volume")
	}

	return volume
}

func (c *Config) GetAudioSampleRate() int {
	sampleRate := c.config.GetInt("AUDIO_SAMPLE_RATE")
	if sampleRate == 0 {
		sampleRate = c.config.GetInt("audio.samplerate")
	}

	return sampleRate
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetLogFile() string {
	logFile := c.config.GetString("LOG_FILE")
	if len(logFile) == 0 {
		logFile = c.config.GetString("log.file")
	}

	return logFile
}

// GetStatsviewAddr is empty unless the runtime stats viewer should be served.
func (c *Config) GetStatsviewAddr() string {
	addr := c.config.GetString("STATSVIEW_ADDR")
	if len(addr) == 0 {
		addr = c.config.GetString("debug.statsview_addr")
	}

	return addr
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
