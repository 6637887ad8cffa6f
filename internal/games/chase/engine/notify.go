package engine

//go:generate mockgen -destination=mock/mock_notifier.go -package=enginemock github.com/vovakirdan/tui-chase/internal/games/chase/engine Notifier

// Input is the held-direction state the engine polls each tick.
type Input interface {
	// IsDirectionPressed reports whether d is currently held.
	IsDirectionPressed(d Direction) bool
	// LastDirection returns the most recently pressed direction.
	LastDirection() (Direction, bool)
}

// Notifier receives gameplay events, typically to play sounds.
// Calls happen synchronously on the simulation goroutine.
type Notifier interface {
	RoundStarting()
	PelletConsumed()
	PowerUpConsumed()
	GhostCaptured(bonus int)
	PlayerKilled()
	EvadeWindowEnded()
	RoundStateChanged(state RoundState)
}

// NopNotifier ignores every event.
type NopNotifier struct{}

func (NopNotifier) RoundStarting() {}
func (NopNotifier) PelletConsumed() {}
func (NopNotifier) PowerUpConsumed() {}
func (NopNotifier) GhostCaptured(int) {}
func (NopNotifier) PlayerKilled() {}
func (NopNotifier) EvadeWindowEnded() {}
func (NopNotifier) RoundStateChanged(RoundState) {}
