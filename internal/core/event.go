package core

import "fmt"

// EventKind identifies something observable that happened during a step.
type EventKind int

const (
	EventTileBroken     EventKind = iota + 1 // a breakable tile was hit from below and removed
	EventItemPickedUp                        // a pickup tile was collected
	EventLevelCompleted                      // the actor touched the level trigger
	EventJumped                              // the actor left the ground by jumping
	EventLanded                              // the actor came to rest on a tile
)

// String returns the event kind name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventTileBroken:
		return "tile-broken"
	case EventItemPickedUp:
		return "item-picked-up"
	case EventLevelCompleted:
		return "level-completed"
	case EventJumped:
		return "jumped"
	case EventLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for audio and visual feedback.
// Layer, Col and Row locate the tile involved; Pitch is only set for pickups.
type Event struct {
	Kind  EventKind
	Layer int
	Col   int
	Row   int
	Pitch float64
}

func (e Event) String() string {
	switch e.Kind {
	case EventTileBroken:
		return fmt.Sprintf("%s layer=%d at (%d,%d)", e.Kind, e.Layer, e.Col, e.Row)
	case EventItemPickedUp:
		return fmt.Sprintf("%s at (%d,%d) pitch=%.2f", e.Kind, e.Col, e.Row, e.Pitch)
	default:
		return e.Kind.String()
	}
}
