package engine

import (
	"fmt"
	"math/rand"
)

// Ghost is an adversary. Transitions mutate the ghost and return the timer
// and notification effects the engine must apply.
type Ghost struct {
	id     int
	spec   GhostSpec
	tuning *Tuning

	Pos    Vec
	Vel    Vec
	Radius float64

	mode   Mode
	dir    Direction
	hidden bool

	forcedRandom bool // Roams randomly regardless of archetype
	guarded      bool // Captured during the current evade window; cannot be frightened again
	showingScore bool
	bonus        int
	savedVel     Vec
	evadeCount   int

	memory     DirSet // Open directions at the last steering decision
	remembered bool
}

func newGhost(id int, spec GhostSpec, tuning *Tuning) *Ghost {
	g := &Ghost{id: id, spec: spec, tuning: tuning, Radius: tuning.GhostRadius}
	g.restoreDefaults()
	g.Pos = spec.Start.Center()
	g.hidden = true
	return g
}

// ID returns the ghost's index within its stage.
func (g *Ghost) ID() int { return g.id }

// Archetype returns the ghost's targeting archetype.
func (g *Ghost) Archetype() Archetype { return g.spec.Archetype }

// Mode returns the current behaviour mode.
func (g *Ghost) Mode() Mode { return g.mode }

// Direction returns the current heading.
func (g *Ghost) Direction() Direction { return g.dir }

// Hidden reports whether the ghost is invisible and inert.
func (g *Ghost) Hidden() bool { return g.hidden }

// ShowingScore reports whether the ghost is frozen displaying its capture bonus.
func (g *Ghost) ShowingScore() bool { return g.showingScore }

// Bonus returns the score awarded for the ghost's most recent capture.
func (g *Ghost) Bonus() int { return g.bonus }

// ForcedRandom reports whether the ghost is roaming regardless of archetype.
func (g *Ghost) ForcedRandom() bool { return g.forcedRandom }

// Guarded reports whether the ghost is immune to frightening until the evade window ends.
func (g *Ghost) Guarded() bool { return g.guarded }

// Circle returns the ghost's collision body.
func (g *Ghost) Circle() Circle {
	return Circle{Pos: g.Pos, Radius: g.Radius}
}

// Speed returns the step magnitude for the current mode.
func (g *Ghost) Speed() int {
	return g.tuning.ghostSpeed(g.mode)
}

func (g *Ghost) timer(what string) string {
	return fmt.Sprintf("ghost%d_%s", g.id, what)
}

// Timer names owned by a ghost.
func (g *Ghost) releaseTimer() string { return g.timer("release") }
func (g *Ghost) roamTimer() string    { return g.timer("roam") }
func (g *Ghost) evadeTimer() string   { return g.timer("evade") }
func (g *Ghost) freezeTimer() string  { return g.timer("freeze") }

// setMode changes mode and clears direction memory, so the next steering
// decision recomputes from scratch.
func (g *Ghost) setMode(m Mode) {
	g.mode = m
	g.memory, g.remembered = 0, false
}

func (g *Ghost) restoreDefaults() {
	g.setMode(g.spec.Mode)
	g.dir = g.spec.Direction
	g.evadeCount = 0
}

// Unhide makes the ghost visible and schedules its release.
func (g *Ghost) Unhide() []Effect {
	if !g.hidden {
		return nil
	}
	g.hidden = false
	return []Effect{StartTimer{Name: g.releaseTimer(), Cmd: ReleaseGhost{Ghost: g.id}, After: g.spec.Delay, Replace: true}}
}

// Hide makes the ghost invisible and stops it.
func (g *Ghost) Hide() {
	g.hidden = true
	g.Vel = Vec{}
}

// Release starts the ghost moving upwards out of its house, roaming at random
// for a while before its archetype takes over.
func (g *Ghost) Release() []Effect {
	if g.hidden {
		return nil
	}
	g.dir = DirUp
	if g.showingScore {
		g.savedVel = DirUp.Velocity(g.Speed())
	} else {
		g.Vel = DirUp.Velocity(g.Speed())
	}
	g.forcedRandom = true
	g.memory, g.remembered = 0, false
	return []Effect{StartTimer{Name: g.roamTimer(), Cmd: EndForcedRoam{Ghost: g.id}, After: g.tuning.ForcedRoam, Replace: true}}
}

// EndForcedRoam hands steering back to the archetype.
func (g *Ghost) EndForcedRoam() {
	g.forcedRandom = false
}

// Frighten switches the ghost to Evade and (re)starts its evade tick.
// Captured and guarded ghosts are unaffected.
func (g *Ghost) Frighten() []Effect {
	if g.mode == ModeCaptured || g.guarded {
		return nil
	}
	g.setMode(ModeEvade)
	g.evadeCount = 0
	return []Effect{
		CancelTimer{Name: g.evadeTimer()},
		StartTimer{Name: g.evadeTimer(), Cmd: EvadeTick{Ghost: g.id}, After: g.tuning.EvadeInterval, Repeat: true},
	}
}

// EvadeTick advances the frightened window by one interval.
func (g *Ghost) EvadeTick() []Effect {
	if !g.mode.Frightened() {
		return []Effect{CancelTimer{Name: g.evadeTimer()}}
	}

	g.evadeCount++
	switch {
	case g.evadeCount >= g.tuning.EvadeTicks:
		g.setMode(ModePursuit)
		g.guarded = false
		g.evadeCount = 0
		return []Effect{
			CancelTimer{Name: g.evadeTimer()},
			ResetCaptureCount{},
			EvadeEnded{Ghost: g.id},
		}
	case g.tuning.isEndingTick(g.evadeCount):
		g.setMode(ModeEvadeEnding)
	case g.mode != ModeEvade:
		g.setMode(ModeEvade)
	}
	return nil
}

// Capture marks the ghost eaten: it freezes showing bonus, then heads home
// at captured speed.
func (g *Ghost) Capture(bonus int) []Effect {
	g.setMode(ModeCaptured)
	g.guarded = true
	g.showingScore = true
	g.bonus = bonus
	g.savedVel = g.Vel
	g.Vel = Vec{}
	g.evadeCount = 0
	return []Effect{
		CancelTimer{Name: g.evadeTimer()},
		StartTimer{Name: g.freezeTimer(), Cmd: EndCaptureFreeze{Ghost: g.id}, After: g.tuning.CaptureFreeze, Replace: true},
	}
}

// EndCaptureFreeze resumes movement after the score display.
func (g *Ghost) EndCaptureFreeze() {
	if !g.showingScore {
		return
	}
	g.showingScore = false
	if !g.hidden && g.Vel.IsZero() {
		g.Vel = g.savedVel
	}
}

// Respawn returns a captured ghost to play at the respawn tile.
func (g *Ghost) Respawn(at Tile) []Effect {
	g.restoreDefaults()
	g.Pos = at.Center()
	g.dir = DirUp
	g.Vel = DirUp.Velocity(g.Speed())
	g.forcedRandom = true
	return []Effect{StartTimer{Name: g.roamTimer(), Cmd: EndForcedRoam{Ghost: g.id}, After: g.tuning.ForcedRoam, Replace: true}}
}

// Freeze stops the ghost where it is and holds back a pending release.
func (g *Ghost) Freeze() []Effect {
	g.Vel = Vec{}
	return []Effect{
		CancelTimer{Name: g.freezeTimer()},
		CancelTimer{Name: g.releaseTimer()},
	}
}

// Restart puts the ghost back at its start tile, hidden, and cancels every
// timer it owns.
func (g *Ghost) Restart() []Effect {
	g.restoreDefaults()
	g.Pos = g.spec.Start.Center()
	g.Vel = Vec{}
	g.hidden = true
	g.forcedRandom = false
	g.guarded = false
	g.showingScore = false
	return []Effect{
		CancelTimer{Name: g.releaseTimer()},
		CancelTimer{Name: g.roamTimer()},
		CancelTimer{Name: g.evadeTimer()},
		CancelTimer{Name: g.freezeTimer()},
	}
}

// ClearGuard lets the ghost be frightened again.
func (g *Ghost) ClearGuard() {
	g.guarded = false
}

// Target is what a ghost steers towards.
type Target struct {
	Player    Vec
	Facing    Direction
	HasFacing bool // False while the player stands still
	Respawn   Tile
}

// aheadTiles is how far offset-pursuit archetypes aim in front of the player.
const aheadTiles = 2

// Steer picks the ghost's heading for this tick and sets its velocity.
// It reports whether the chosen heading is open; a boxed-in ghost stays put.
//
// The heading is kept while it stays open and the set of open directions is
// unchanged since the last decision. Otherwise the reversal of the current
// heading is excluded and a new heading is chosen among the rest, by random
// pick or by minimum distance to a target depending on mode and archetype.
// A dead end forces the reversal.
func (g *Ghost) Steer(m *Maze, target Target, rng *rand.Rand) bool {
	speed := g.Speed()
	open := m.OpenDirections(g.Circle(), speed)

	if !(open.Has(g.dir) && g.remembered && open == g.memory) {
		g.memory, g.remembered = open, true
		g.choose(open, target, speed, rng)
	}

	g.Vel = g.dir.Velocity(speed)
	return open.Has(g.dir)
}

func (g *Ghost) choose(open DirSet, target Target, speed int, rng *rand.Rand) {
	candidates := open.Without(g.dir.Opposite())
	if candidates.Len() == 0 {
		g.dir = g.dir.Opposite()
		return
	}

	switch g.mode {
	case ModeCaptured:
		g.dir = g.closest(candidates, target.Respawn.Center(), speed)
	case ModeEvade, ModeEvadeEnding:
		g.dir = pickRandom(candidates, rng)
	default:
		if g.forcedRandom {
			g.dir = pickRandom(candidates, rng)
			return
		}
		switch g.spec.Archetype {
		case Blinky:
			g.dir = g.closest(candidates, target.Player, speed)
		case Pinky, Clyde:
			aim := target.Player
			if target.HasFacing {
				aim = aim.Add(target.Facing.Unit().Scale(aheadTiles * TileWidth))
			}
			g.dir = g.closest(candidates, aim, speed)
		default:
			g.dir = pickRandom(candidates, rng)
		}
	}
}

// closest returns the candidate whose next position lies nearest to aim.
// Ties go to the earliest direction in evaluation order.
func (g *Ghost) closest(candidates DirSet, aim Vec, speed int) Direction {
	best, bestDist := g.dir, 0.0
	first := true
	for _, d := range candidates.Slice() {
		dist := Dist(aim, g.Pos.Add(d.Velocity(speed)))
		if first || dist < bestDist {
			best, bestDist, first = d, dist, false
		}
	}
	return best
}

func pickRandom(candidates DirSet, rng *rand.Rand) Direction {
	dirs := candidates.Slice()
	return dirs[rng.Intn(len(dirs))]
}
