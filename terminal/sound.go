package terminal

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/meghashyamc/pong2d/config"
	"github.com/meghashyamc/pong2d/game"
	"github.com/meghashyamc/pong2d/logger"
	"github.com/meghashyamc/pong2d/sound"
)

// cuePlayer plays prerendered cues through the beep speaker. Overlapping cues are mixed.
type cuePlayer struct {
	buffers map[game.Cue]*beep.Buffer
}

// NewCuePlayer initializes the speaker. Audio problems are not fatal: the
// returned player is silent and the game runs without sound.
func NewCuePlayer(cfg *config.Config, log logger.Logger) game.CuePlayer {
	if !cfg.GetAudioEnabled() {
		log.Info("audio disabled")
		return game.SilentPlayer{}
	}

	rate := beep.SampleRate(cfg.GetAudioSampleRate())
	p := &cuePlayer{buffers: make(map[game.Cue]*beep.Buffer, len(game.Cues))}
	for _, cue := range game.Cues {
		buffer, err := sound.Buffer(cue, rate, cfg.GetAudioVolume())
		if err != nil {
			log.Error("failed to synthesize cue, audio disabled", "cue", cue.String(), "err", err)
			return game.SilentPlayer{}
		}
		p.buffers[cue] = buffer
	}

	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		log.Warn("audio initialization failed, continuing without sound", "err", err)
		return game.SilentPlayer{}
	}

	log.Info("audio initialized", "sampleRate", int(rate), "volume", cfg.GetAudioVolume())
	return p
}

func (p *cuePlayer) Play(cue game.Cue) {
	buffer, ok := p.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

// CloseAudio releases the speaker if it was opened.
func CloseAudio(player game.CuePlayer) {
	if _, ok := player.(*cuePlayer); ok {
		speaker.Close()
	}
}
