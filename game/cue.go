package game

// Cue identifies one of the sounds played when the ball hits something.
type Cue int

const (
	CueHit Cue = iota
	CueGoal
	CueWall
	cueCount
)

// Cues lists every cue, in order.
var Cues = [cueCount]Cue{CueHit, CueGoal, CueWall}

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueGoal:
		return "goal"
	case CueWall:
		return "wall"
	}
	return "unknown"
}

// CuePlayer plays a cue without waiting for it to finish.
type CuePlayer interface {
	Play(cue Cue)
}

// SilentPlayer drops every cue.
type SilentPlayer struct{}

func (SilentPlayer) Play(Cue) {}
