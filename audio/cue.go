package audio

// Cue names a one-shot sound effect
type Cue int

const (
	CuePickup   Cue = iota // Resource collected
	CueBuild               // Building placed
	CueDenied              // Blocked move or unaffordable build
	CueGameOver            // Player caught
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueBuild:
		return "build"
	case CueDenied:
		return "denied"
	case CueGameOver:
		return "game_over"
	}
	return "unknown"
}
