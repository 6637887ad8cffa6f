package chase

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
)

// stickyInput turns terminal key presses into a held direction.
// Terminals report presses but not releases, so the last direction
// pressed stays held until another one replaces it.
type stickyInput struct {
	dir  engine.Direction
	held bool
}

func (s *stickyInput) IsDirectionPressed(d engine.Direction) bool {
	return s.held && s.dir == d
}

func (s *stickyInput) LastDirection() (engine.Direction, bool) {
	return s.dir, s.held
}

func (s *stickyInput) press(d engine.Direction) {
	s.dir, s.held = d, true
}

func (s *stickyInput) release() {
	s.held = false
}

// directionFor maps a platform action onto a maze direction.
func directionFor(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	default:
		return 0, false
	}
}

// Ticks a banner stays on the HUD.
const bannerTicks = 60

// banner collects engine events into a short HUD message.
type banner struct {
	text   string
	ttl    int
	logger *log.Logger
}

func (b *banner) show(text string) {
	b.text = text
	b.ttl = bannerTicks
}

// step ages the banner by one tick.
func (b *banner) step() {
	if b.ttl > 0 {
		b.ttl--
		if b.ttl == 0 {
			b.text = ""
		}
	}
}

func (b *banner) RoundStarting() {
	b.logger.Debug("round starting")
	b.show("GET READY")
}

func (b *banner) PelletConsumed() {}

func (b *banner) PowerUpConsumed() {
	b.logger.Debug("power pellet eaten")
	b.show("POWER UP")
}

func (b *banner) GhostCaptured(bonus int) {
	b.logger.Debug("ghost captured", "bonus", bonus)
	b.show(fmt.Sprintf("+%d", bonus))
}

func (b *banner) PlayerKilled() {
	b.logger.Debug("player killed")
	b.show("CAUGHT")
}

func (b *banner) EvadeWindowEnded() {
	b.logger.Debug("evade window ended")
}

func (b *banner) RoundStateChanged(state engine.RoundState) {
	switch state {
	case engine.StateRoundClear:
		b.show("STAGE CLEAR")
	case engine.StateGameOver, engine.StateMenu:
		b.text, b.ttl = "", 0
	}
}
