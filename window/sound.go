package window

import (
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/meghashyamc/pong2d/config"
	"github.com/meghashyamc/pong2d/game"
	"github.com/meghashyamc/pong2d/logger"
	"github.com/meghashyamc/pong2d/sound"
)

// cuePlayer keeps one ebiten player per cue, rewound on every play.
// A cue requested while it is still playing starts over.
type cuePlayer struct {
	players map[game.Cue]*audio.Player
}

// newCuePlayer falls back to silence when audio is disabled or a cue cannot be built;
// the game runs without sound.
func newCuePlayer(cfg *config.Config, log logger.Logger) game.CuePlayer {
	if !cfg.GetAudioEnabled() {
		log.Info("audio disabled")
		return game.SilentPlayer{}
	}

	sampleRate := cfg.GetAudioSampleRate()
	ctx := audio.NewContext(sampleRate)
	rate := beep.SampleRate(sampleRate)

	p := &cuePlayer{players: make(map[game.Cue]*audio.Player, len(game.Cues))}
	for _, cue := range game.Cues {
		s, err := sound.Synthesize(cue, rate, cfg.GetAudioVolume())
		if err != nil {
			log.Error("failed to synthesize cue, audio disabled", "cue", cue.String(), "err", err)
			return game.SilentPlayer{}
		}
		p.players[cue] = ctx.NewPlayerFromBytes(sound.EncodePCM(s, rate))
	}

	log.Info("audio initialized", "sampleRate", sampleRate, "volume", cfg.GetAudioVolume())
	return p
}

func (p *cuePlayer) Play(cue game.Cue) {
	player, ok := p.players[cue]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		return
	}
	player.Play()
}
