package core

// EventKind identifies something noteworthy that happened during a tick.
// The platform turns events into sound cues and UI feedback; games never
// talk to those collaborators directly.
type EventKind int

const (
	EventNone EventKind = iota
	EventJump
	EventHit
	EventPickup
	EventPowerUp
	EventPowerExpired
	EventBossWarning
	EventBossStart
	EventBossDefeated
	EventGameOver
	EventNewHighScore
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventJump:
		return "Jump"
	case EventHit:
		return "Hit"
	case EventPickup:
		return "Pickup"
	case EventPowerUp:
		return "PowerUp"
	case EventPowerExpired:
		return "PowerExpired"
	case EventBossWarning:
		return "BossWarning"
	case EventBossStart:
		return "BossStart"
	case EventBossDefeated:
		return "BossDefeated"
	case EventGameOver:
		return "GameOver"
	case EventNewHighScore:
		return "NewHighScore"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence reported by a game step.
type Event struct {
	Kind   EventKind
	Detail string // Optional detail, e.g. the power-up type
}
