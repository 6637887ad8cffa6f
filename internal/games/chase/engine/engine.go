package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/sched"
)

// ErrNoStages is returned when an engine is built without any stage.
var ErrNoStages = errors.New("engine: no stages")

// maxBonusDoublings caps the capture bonus at GhostBaseScore<<16 however
// many ghosts a stage holds.
const maxBonusDoublings = 16

// RoundState is the phase of the game loop.
type RoundState int

const (
	StateMenu RoundState = iota
	StateReady
	StatePlay
	StateRoundClear
	StateLifeLost
	StateGameOver
	StateFinished
)

func (s RoundState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateReady:
		return "ready"
	case StatePlay:
		return "play"
	case StateRoundClear:
		return "round_clear"
	case StateLifeLost:
		return "life_lost"
	case StateGameOver:
		return "game_over"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// FinalStage decides what clearing the last stage of a pack does.
type FinalStage int

const (
	// FinalStageLoop starts the pack over from its first stage.
	FinalStageLoop FinalStage = iota
	// FinalStageFinish ends the game in StateFinished.
	FinalStageFinish
)

// ParseFinalStage converts "loop" or "finish" to a FinalStage.
func ParseFinalStage(s string) (FinalStage, error) {
	switch s {
	case "loop", "":
		return FinalStageLoop, nil
	case "finish":
		return FinalStageFinish, nil
	default:
		return 0, fmt.Errorf("engine: unknown final stage policy %q", s)
	}
}

// Progression adjusts tuning as the player advances through stages.
// Score is the player's score when the stage loads.
type Progression interface {
	Tune(base Tuning, stage int, score int) Tuning
}

// Option configures an Engine.
type Option func(*Engine)

// WithTuning replaces DefaultTuning.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.base = t }
}

// WithClock sets the time source for round and ghost timers.
func WithClock(c sched.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithNotifier sets the receiver of gameplay events.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithInput sets the held-direction source polled each tick.
func WithInput(in Input) Option {
	return func(e *Engine) { e.input = in }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithSeed seeds the random roaming decisions.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithFinalStage sets the policy applied after the last stage is cleared.
func WithFinalStage(p FinalStage) Option {
	return func(e *Engine) { e.finalStage = p }
}

// WithHighScore seeds the session high score, e.g. when a game is restarted.
func WithHighScore(n int) Option {
	return func(e *Engine) { e.highScore = n }
}

// WithProgression sets per-stage tuning adjustments.
func WithProgression(p Progression) Option {
	return func(e *Engine) { e.progression = p }
}

// Engine owns the simulation: one stage, its ghosts, the player and the
// scheduler driving every delayed transition. Advance runs one tick.
// Not safe for concurrent use.
type Engine struct {
	stages      []Stage
	base        Tuning
	tuning      Tuning
	clock       sched.Clock
	sched       *sched.Scheduler[Command]
	notifier    Notifier
	input       Input
	logger      *log.Logger
	rng         *rand.Rand
	finalStage  FinalStage
	progression Progression

	state      RoundState
	frozen     bool // Simulation halted while a round transition is pending
	paused     bool // Halted by the player
	stageIndex int
	maze       *Maze
	respawn    Tile
	ghosts     []*Ghost
	player     *Player
	highScore  int
	captured   int // Captures in the current evade window
	tick       uint64
}

// New creates an engine over the given stages. Every stage is validated up
// front so a broken pack fails here rather than mid-game.
func New(stages []Stage, opts ...Option) (*Engine, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	for _, s := range stages {
		if _, err := s.Validate(); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		stages:   stages,
		base:     DefaultTuning(),
		clock:    sched.SystemClock{},
		notifier: NopNotifier{},
		logger:   log.New(io.Discard),
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sched = sched.New[Command](e.clock, e.dispatch)

	if err := e.loadStage(0); err != nil {
		return nil, err
	}
	e.player = newPlayer(&e.tuning, e.stages[0].Player)
	e.frozen = true
	return e, nil
}

// State returns the current round state.
func (e *Engine) State() RoundState { return e.state }

// Paused reports whether the player paused the game.
func (e *Engine) Paused() bool { return e.paused }

// Frozen reports whether a round transition is pending.
func (e *Engine) Frozen() bool { return e.frozen }

// Player returns the player.
func (e *Engine) Player() *Player { return e.player }

// Ghosts returns the ghosts of the current stage.
func (e *Engine) Ghosts() []*Ghost { return e.ghosts }

// Maze returns the current stage layout.
func (e *Engine) Maze() *Maze { return e.maze }

// Stage returns the current stage definition and its index in the pack.
func (e *Engine) Stage() (Stage, int) { return e.stages[e.stageIndex], e.stageIndex }

// StageCount returns the number of stages in the pack.
func (e *Engine) StageCount() int { return len(e.stages) }

// HighScore returns the best score of this session.
func (e *Engine) HighScore() int { return e.highScore }

// CapturedThisWindow returns the number of ghosts captured in the current evade window.
func (e *Engine) CapturedThisWindow() int { return e.captured }

// Tick returns the number of simulated ticks.
func (e *Engine) Tick() uint64 { return e.tick }

// Tuning returns the tuning in effect for the current stage.
func (e *Engine) Tuning() Tuning { return e.tuning }

// Scheduler exposes the engine's timers for inspection.
func (e *Engine) Scheduler() *sched.Scheduler[Command] { return e.sched }

// Pause halts the simulation and every timer.
func (e *Engine) Pause() {
	if e.paused || e.state == StateMenu {
		return
	}
	e.paused = true
	e.sched.Pause()
	e.logger.Debug("paused", "state", e.state)
}

// Resume continues after Pause with every timer's remaining time intact.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.paused = false
	e.sched.Resume()
	e.logger.Debug("resumed", "state", e.state)
}

// NewGame leaves the menu and starts the ready countdown.
// No-op outside the menu or while a countdown is already running.
func (e *Engine) NewGame() error {
	if e.state != StateMenu || e.sched.Exists(TimerNewGame) {
		return nil
	}
	// A fresh player first, so stage tuning sees a zero score.
	e.player = newPlayer(&e.tuning, e.stages[0].Player)
	if err := e.loadStage(0); err != nil {
		return err
	}
	e.captured = 0
	e.frozen = true
	e.setState(StateReady)
	e.notifier.RoundStarting()
	e.sched.AddTimer(TimerNewGame, StartRound{}, e.tuning.ReadyDelay, false)
	return nil
}

// Advance runs one simulation tick: fires due timers, moves ghosts and the
// player, resolves collisions and checks for round transitions.
func (e *Engine) Advance() {
	if e.paused {
		return
	}
	e.tick++
	e.sched.Run()

	if e.state == StateMenu {
		return
	}

	// Ghosts only move in play; a death pause holds them where they are.
	if !e.frozen && e.state == StatePlay && e.player.Lives > 0 {
		for i := len(e.ghosts) - 1; i >= 0; i-- {
			e.moveGhost(e.ghosts[i])
		}
	}

	if !e.frozen {
		e.player.update(e.maze, e.input)
		if !e.player.killed {
			e.collectPellets()
			e.touchGhosts()
		}
	}

	e.checkGameState()
}

func (e *Engine) moveGhost(g *Ghost) {
	if g.hidden || g.Vel.IsZero() {
		return
	}

	facing, hasFacing := e.player.Facing()
	target := Target{Player: e.player.Pos, Facing: facing, HasFacing: hasFacing, Respawn: e.respawn}
	if g.Steer(e.maze, target, e.rng) {
		g.Pos = Integrate(g.Pos, g.Vel, e.maze.BoardWidth())
	}

	if g.mode == ModeCaptured && Dist(g.Pos, e.respawn.Center()) < TileWidth {
		e.logger.Debug("ghost respawned", "ghost", g.id, "archetype", g.spec.Archetype)
		e.apply(g.Respawn(e.respawn))
	}
}

func (e *Engine) collectPellets() {
	t := TileAt(e.player.Pos)
	c, ok := e.maze.CollectibleAt(t)
	if !ok || Dist(c.Pos, e.player.Pos) >= c.Radius+e.player.Radius {
		return
	}
	e.maze.Consume(t)

	switch c.Kind {
	case KindPowerPellet:
		e.player.Score += e.tuning.PowerPelletScore
		e.notifier.PowerUpConsumed()
		e.frightenGhosts()
	default:
		e.player.Score += e.tuning.PelletScore
		e.notifier.PelletConsumed()
	}
}

// frightenGhosts starts or restarts the evade window for every ghost that
// is not captured or guarded.
func (e *Engine) frightenGhosts() {
	for _, g := range e.ghosts {
		e.apply(g.Frighten())
	}
	e.sched.AddTimer(TimerEvadeWindow, EndEvadeWindow{}, e.tuning.EvadeWindow(), true)
	e.logger.Debug("evade window started", "length", e.tuning.EvadeWindow())
}

func (e *Engine) touchGhosts() {
	if e.player.busy {
		return
	}
	for i := len(e.ghosts) - 1; i >= 0; i-- {
		g := e.ghosts[i]
		if g.hidden || Dist(g.Pos, e.player.Pos) >= g.Radius/2+e.player.Radius/2 {
			continue
		}

		switch {
		case g.mode.Frightened():
			bonus := captureBonus(e.tuning.GhostBaseScore, e.captured)
			e.captured++
			e.player.Score += bonus
			e.apply(g.Capture(bonus))
			e.notifier.GhostCaptured(bonus)
			e.logger.Debug("ghost captured", "ghost", g.id, "bonus", bonus)
		case g.mode == ModePursuit:
			e.killPlayer()
			return
		}
	}
}

// captureBonus doubles base for every ghost already captured in the window.
func captureBonus(base, captured int) int {
	return base << min(captured, maxBonusDoublings)
}

func (e *Engine) killPlayer() {
	e.player.busy = true
	e.player.Vel = Vec{}
	e.player.Lives--
	for _, g := range e.ghosts {
		e.apply(g.Freeze())
	}
	e.setState(StateLifeLost)
	e.notifier.PlayerKilled()
	e.sched.AddTimer(TimerBeforeDie, ResetAfterDeath{}, e.tuning.BeforeDieDelay, false)
}

func (e *Engine) checkGameState() {
	if e.sched.Exists(TimerBeforeDie) || e.sched.Exists(TimerAfterDie) {
		return
	}
	if e.state != StatePlay {
		return
	}

	if e.player.Lives <= 0 {
		e.endGame(StateGameOver)
		return
	}
	if e.maze.Remaining() == 0 {
		if e.finalStage == FinalStageFinish && e.stageIndex == len(e.stages)-1 {
			e.endGame(StateFinished)
			return
		}
		e.nextStage()
	}
}

// endGame freezes the round and schedules the return to the menu.
func (e *Engine) endGame(state RoundState) {
	if e.frozen || e.sched.Exists(TimerEndGame) {
		return
	}
	e.frozen = true
	e.highScore = max(e.highScore, e.player.Score)
	e.setState(state)
	e.sched.AddTimer(TimerEndGame, CloseGame{}, e.tuning.EndGameDelay, false)
}

// nextStage shows the stage-clear pose and schedules the next stage.
func (e *Engine) nextStage() {
	if e.frozen || e.sched.Exists(TimerNextStage) {
		return
	}
	e.player.SetFull()
	e.player.Vel = Vec{}
	for _, g := range e.ghosts {
		g.Hide()
	}
	e.frozen = true
	e.setState(StateRoundClear)
	e.sched.AddTimer(TimerNextStage, AdvanceStage{}, e.tuning.NextStageDelay, false)
}

func (e *Engine) setState(s RoundState) {
	if e.state == s {
		return
	}
	e.logger.Debug("round state", "from", e.state, "to", s, "stage", e.stageIndex, "tick", e.tick)
	e.state = s
	e.notifier.RoundStateChanged(s)
}

// loadStage replaces the maze and ghosts with a fresh copy of stage i.
// Ghosts start hidden. Timers belonging to the previous stage are dropped.
func (e *Engine) loadStage(i int) error {
	stage := e.stages[i]
	m, err := stage.Validate()
	if err != nil {
		return fmt.Errorf("engine: cannot load stage %d: %w", i, err)
	}

	for _, g := range e.ghosts {
		e.apply(g.Restart())
	}
	e.sched.Delete(TimerEvadeWindow)

	e.tuning = e.base
	if e.progression != nil {
		score := 0
		if e.player != nil {
			score = e.player.Score
		}
		e.tuning = e.progression.Tune(e.base, i, score)
	}

	e.stageIndex = i
	e.maze = m
	e.respawn = *stage.Respawn
	e.captured = 0
	e.ghosts = make([]*Ghost, len(stage.Ghosts))
	for gi, spec := range stage.Ghosts {
		e.ghosts[gi] = newGhost(gi, spec, &e.tuning)
	}
	if e.player != nil {
		e.player.start = stage.Player
		e.player.speed = clampStep(e.tuning.PlayerSpeed)
	}
	e.logger.Debug("stage loaded", "index", i, "id", stage.ID, "pellets", m.Remaining(), "ghosts", len(e.ghosts))
	return nil
}

func (e *Engine) unhideGhosts() {
	for _, g := range e.ghosts {
		e.apply(g.Unhide())
	}
}

// endEvadeWindow resets the capture counter and lets every ghost be frightened again.
func (e *Engine) endEvadeWindow() {
	e.sched.Delete(TimerEvadeWindow)
	e.captured = 0
	for _, g := range e.ghosts {
		g.ClearGuard()
	}
}

// apply executes the effects requested by a ghost transition.
func (e *Engine) apply(effects []Effect) {
	for _, eff := range effects {
		switch eff := eff.(type) {
		case StartTimer:
			if eff.Repeat {
				e.sched.AddInterval(eff.Name, eff.Cmd, eff.After)
			} else {
				e.sched.AddTimer(eff.Name, eff.Cmd, eff.After, eff.Replace)
			}
		case CancelTimer:
			e.sched.Delete(eff.Name)
		case ResetCaptureCount:
			e.captured = 0
		case EvadeEnded:
			e.notifier.EvadeWindowEnded()
		default:
			panic(fmt.Sprintf("engine: unhandled effect %T", eff))
		}
	}
}

func (e *Engine) ghost(i int) *Ghost {
	if i < 0 || i >= len(e.ghosts) {
		return nil
	}
	return e.ghosts[i]
}

// dispatch runs the command of a fired timer.
func (e *Engine) dispatch(cmd Command) {
	switch cmd := cmd.(type) {
	case ReleaseGhost:
		if g := e.ghost(cmd.Ghost); g != nil {
			e.apply(g.Release())
		}
	case EndForcedRoam:
		if g := e.ghost(cmd.Ghost); g != nil {
			g.EndForcedRoam()
		}
	case EvadeTick:
		if g := e.ghost(cmd.Ghost); g != nil {
			e.apply(g.EvadeTick())
		}
	case EndCaptureFreeze:
		if g := e.ghost(cmd.Ghost); g != nil {
			g.EndCaptureFreeze()
		}
	case EndEvadeWindow:
		e.endEvadeWindow()
		e.logger.Debug("evade window ended")

	case StartRound:
		e.player.Lives = e.tuning.Lives
		e.player.Score = 0
		e.player.Respawn()
		e.unhideGhosts()
		e.frozen = false
		e.setState(StatePlay)

	case CloseGame:
		if err := e.loadStage(0); err != nil {
			panic(err)
		}
		e.frozen = true
		e.setState(StateMenu)

	case AdvanceStage:
		next := e.stageIndex + 1
		if next >= len(e.stages) {
			next = 0
		}
		if err := e.loadStage(next); err != nil {
			panic(err)
		}
		e.player.Respawn()
		e.unhideGhosts()
		e.frozen = false
		e.setState(StatePlay)

	case ResetAfterDeath:
		for _, g := range e.ghosts {
			e.apply(g.Restart())
		}
		e.endEvadeWindow()
		e.player.kill()
		e.sched.AddTimer(TimerAfterDie, RespawnPlayer{}, e.tuning.AfterDieDelay, false)

	case RespawnPlayer:
		if e.player.Lives <= 0 {
			e.endGame(StateGameOver)
			return
		}
		e.player.Respawn()
		e.unhideGhosts()
		e.setState(StatePlay)

	default:
		panic(fmt.Sprintf("engine: unhandled command %T", cmd))
	}
}
