package engine

import "math"

// Mouth angles in radians, half the opening on each side of the heading.
const (
	mouthIdle    = 0.5
	mouthMax     = 0.75
	mouthChomp   = 0.18
	mouthFull    = 2 * math.Pi // Closed disc shown while the stage is cleared
	mouthDead    = 3.14
	mouthDieStep = 0.1
)

// Player is the player-controlled circle.
type Player struct {
	Pos    Vec
	Vel    Vec
	Radius float64

	Lives int
	Score int

	start Tile
	speed int

	busy   bool // Death sequence running: input and ghost contact ignored
	killed bool // Death animation running: no movement

	mouth      float64
	chompSpeed float64
	facing     Direction // Last heading, kept while stopped
	hasFacing  bool      // Set only while moving
}

func newPlayer(t *Tuning, start Tile) *Player {
	p := &Player{
		Radius:     t.PlayerRadius,
		Lives:      t.Lives,
		start:      start,
		speed:      clampStep(t.PlayerSpeed),
		chompSpeed: mouthChomp,
	}
	p.Respawn()
	return p
}

// Respawn puts the player on its start tile heading right.
func (p *Player) Respawn() {
	p.busy = false
	p.killed = false
	p.mouth = mouthIdle
	p.Pos = p.start.Center()
	p.Vel = DirRight.Velocity(p.speed)
	p.facing, p.hasFacing = DirRight, true
}

// Circle returns the player's collision body.
func (p *Player) Circle() Circle {
	return Circle{Pos: p.Pos, Radius: p.Radius}
}

// Busy reports whether the player is in its death sequence.
func (p *Player) Busy() bool { return p.busy }

// Killed reports whether the death animation is playing.
func (p *Player) Killed() bool { return p.killed }

// Mouth returns the current mouth half-angle in radians.
func (p *Player) Mouth() float64 { return p.mouth }

// Facing returns the direction the player is moving in. ok is false while
// the player stands still.
func (p *Player) Facing() (d Direction, ok bool) { return p.facing, p.hasFacing }

// Heading returns the last direction the player moved in, for drawing.
func (p *Player) Heading() Direction { return p.facing }

// DeathProgress returns how far the death animation has run, in [0, 1].
func (p *Player) DeathProgress() float64 {
	if !p.killed {
		return 0
	}
	return math.Max(0, math.Min(1, (p.mouth-mouthIdle)/(mouthDead-mouthIdle)))
}

// kill stops the player and starts the death animation.
func (p *Player) kill() {
	p.killed = true
	p.Vel = Vec{}
	p.hasFacing = false
	p.mouth = mouthIdle
}

// SetFull closes the mouth for the stage-clear pose.
func (p *Player) SetFull() {
	p.mouth = mouthFull
}

// steer applies the held direction. A blocked turn keeps the current
// velocity, so the turn is taken as soon as the opening lines up.
func (p *Player) steer(m *Maze, in Input) {
	if p.busy || p.killed || in == nil {
		return
	}
	d, ok := in.LastDirection()
	if !ok || !in.IsDirectionPressed(d) {
		return
	}
	want := d.Velocity(p.speed)
	if !m.Blocked(p.Circle(), want) {
		p.Vel = want
	}
}

// update runs one tick of player movement.
func (p *Player) update(m *Maze, in Input) {
	if p.killed {
		p.Vel = Vec{}
		p.animateDie()
		return
	}

	p.steer(m, in)
	if m.Blocked(p.Circle(), p.Vel) {
		p.Vel = Vec{}
	}
	p.Pos = Integrate(p.Pos, p.Vel, m.BoardWidth())
	p.animateChomp()
}

func (p *Player) animateChomp() {
	d, moving := DirectionOf(p.Vel)
	if !moving {
		p.mouth = mouthIdle
		p.hasFacing = false
		return
	}
	p.facing, p.hasFacing = d, true

	if p.mouth < 0 || p.mouth > mouthMax {
		p.chompSpeed = -p.chompSpeed
	}
	p.mouth += p.chompSpeed
}

func (p *Player) animateDie() {
	if p.mouth >= mouthDead-0.04 {
		p.mouth = mouthDead
		return
	}
	p.mouth += mouthDieStep
}
