package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-chase/internal/games/chase/engine"
	enginemock "github.com/vovakirdan/tui-chase/internal/games/chase/engine/mock"
	"github.com/vovakirdan/tui-chase/internal/games/chase/levels"
	"github.com/vovakirdan/tui-chase/internal/sched"
)

const tick = 10 * time.Millisecond

var (
	// A single pellet under the player start: eaten on the first tick of play.
	clearRows = []string{"1-----2", "|.    |", "|-----|", "|     |", "4-----3"}
	// As clearRows, plus a pellet the player cannot reach.
	openRows = []string{"1-----2", "|.    |", "|-----|", "|  .  |", "4-----3"}
	// A power pellet under the player start.
	powerRows = []string{"1-----2", "|p    |", "|-----|", "|  .  |", "4-----3"}
)

func stage(id string, rows []string, ghosts ...engine.GhostSpec) engine.Stage {
	respawn := engine.Tile{X: 3, Y: 3}
	return engine.Stage{
		ID:      id,
		Rows:    rows,
		Respawn: &respawn,
		Player:  engine.Tile{X: 1, Y: 1},
		Ghosts:  ghosts,
	}
}

// roomGhost parks a ghost in the closed bottom room. It is never released.
func roomGhost(x int) engine.GhostSpec {
	return engine.GhostSpec{
		Archetype: engine.Blinky,
		Mode:      engine.ModePursuit,
		Start:     engine.Tile{X: x, Y: 3},
		Direction: engine.DirLeft,
		Delay:     time.Hour,
	}
}

type heldKey struct {
	dir  engine.Direction
	held bool
}

func (h *heldKey) IsDirectionPressed(d engine.Direction) bool { return h.held && d == h.dir }
func (h *heldKey) LastDirection() (engine.Direction, bool)    { return h.dir, h.held }

type EngineSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	notifier *enginemock.MockNotifier
	clock    *sched.ManualClock
	eng      *engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.notifier = enginemock.NewMockNotifier(s.ctrl)
	s.clock = sched.NewManualClock(time.Unix(0, 0))
}

func (s *EngineSuite) start(stages []engine.Stage, opts ...engine.Option) {
	opts = append([]engine.Option{
		engine.WithClock(s.clock),
		engine.WithNotifier(s.notifier),
		engine.WithSeed(7),
	}, opts...)

	eng, err := engine.New(stages, opts...)
	s.Require().NoError(err)
	s.eng = eng
}

// run advances the clock in fixed ticks for d.
func (s *EngineSuite) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		s.clock.Advance(tick)
		s.eng.Advance()
	}
}

// allowNoise accepts any number of the given pellet and lifecycle events.
func (s *EngineSuite) allowNoise() {
	s.notifier.EXPECT().RoundStarting().AnyTimes()
	s.notifier.EXPECT().PelletConsumed().AnyTimes()
	s.notifier.EXPECT().PowerUpConsumed().AnyTimes()
	s.notifier.EXPECT().EvadeWindowEnded().AnyTimes()
	s.notifier.EXPECT().RoundStateChanged(gomock.Any()).AnyTimes()
}

func (s *EngineSuite) TestStartsInMenu() {
	s.start([]engine.Stage{stage("a", openRows)})

	s.Equal(engine.StateMenu, s.eng.State())
	s.run(time.Second)
	s.Equal(engine.StateMenu, s.eng.State())
	s.Equal(2, s.eng.Maze().Remaining())
}

func (s *EngineSuite) TestNewGameCountdown() {
	s.start([]engine.Stage{stage("a", openRows, roomGhost(3))})

	gomock.InOrder(
		s.notifier.EXPECT().RoundStateChanged(engine.StateReady),
		s.notifier.EXPECT().RoundStateChanged(engine.StatePlay),
	)
	s.notifier.EXPECT().RoundStarting()
	s.notifier.EXPECT().PelletConsumed()

	s.Require().NoError(s.eng.NewGame())
	s.Require().NoError(s.eng.NewGame(), "second call is a no-op")
	s.Equal(engine.StateReady, s.eng.State())
	s.True(s.eng.Ghosts()[0].Hidden(), "ghosts stay hidden during the countdown")

	s.run(4490 * time.Millisecond)
	s.Equal(engine.StateReady, s.eng.State())
	s.Equal(engine.Tile{X: 1, Y: 1}.Center(), s.eng.Player().Pos, "nothing moves before play")

	s.run(tick)
	s.Equal(engine.StatePlay, s.eng.State())
	s.Equal(3, s.eng.Player().Lives)
	s.Equal(10, s.eng.Player().Score)
	s.False(s.eng.Ghosts()[0].Hidden())
	s.True(s.eng.Scheduler().Exists("ghost0_release"))
}

func (s *EngineSuite) TestStageClearAdvances() {
	s.start([]engine.Stage{stage("a", clearRows, roomGhost(3)), stage("b", openRows)},
		engine.WithFinalStage(engine.FinalStageFinish))
	s.allowNoise()

	s.Require().NoError(s.eng.NewGame())
	s.run(4500 * time.Millisecond)

	s.Equal(engine.StateRoundClear, s.eng.State())
	s.True(s.eng.Frozen())
	s.True(s.eng.Ghosts()[0].Hidden())
	s.InDelta(2*math.Pi, s.eng.Player().Mouth(), 0.001, "stage-clear pose")

	s.run(2990 * time.Millisecond)
	s.Equal(engine.StateRoundClear, s.eng.State())

	s.run(tick)
	_, index := s.eng.Stage()
	s.Equal(1, index)
	s.Equal(engine.StatePlay, s.eng.State())
	s.Equal(1, s.eng.Maze().Remaining(), "fresh stage, start pellet eaten")
	s.Equal(20, s.eng.Player().Score)
}

type stageCall struct{ stage, score int }

type recordingProgression struct{ calls []stageCall }

func (r *recordingProgression) Tune(base engine.Tuning, stage int, score int) engine.Tuning {
	r.calls = append(r.calls, stageCall{stage, score})
	base.GhostSpeed += stage
	return base
}

func (s *EngineSuite) TestProgressionTunesEachStage() {
	prog := &recordingProgression{}
	s.start([]engine.Stage{stage("a", clearRows, roomGhost(3)), stage("b", openRows)},
		engine.WithProgression(prog))
	s.allowNoise()
	s.Equal(4, s.eng.Tuning().GhostSpeed)

	s.Require().NoError(s.eng.NewGame())
	s.run(7500 * time.Millisecond)

	_, index := s.eng.Stage()
	s.Require().Equal(1, index)
	s.Equal(5, s.eng.Tuning().GhostSpeed)
	s.Equal([]stageCall{{0, 0}, {0, 0}, {1, 10}}, prog.calls)
}

func (s *EngineSuite) TestFinalStageFinishes() {
	s.start([]engine.Stage{stage("a", clearRows)}, engine.WithFinalStage(engine.FinalStageFinish))
	s.allowNoise()

	s.Require().NoError(s.eng.NewGame())
	s.run(4500 * time.Millisecond)
	s.Equal(engine.StateFinished, s.eng.State())
	s.Equal(10, s.eng.HighScore(), "taken as the game ends")

	s.run(1200 * time.Millisecond)
	s.Equal(engine.StateMenu, s.eng.State())
	s.Equal(10, s.eng.HighScore())
	s.Equal(1, s.eng.Maze().Remaining(), "stage reloaded for the menu")
}

func (s *EngineSuite) TestHighScoreCarriesOver() {
	s.start([]engine.Stage{stage("a", clearRows)},
		engine.WithFinalStage(engine.FinalStageFinish), engine.WithHighScore(500))
	s.allowNoise()

	s.Equal(500, s.eng.HighScore())
	s.Require().NoError(s.eng.NewGame())
	s.run(5700 * time.Millisecond)
	s.Equal(engine.StateMenu, s.eng.State())
	s.Equal(500, s.eng.HighScore(), "a lower score keeps the best")
}

func (s *EngineSuite) TestFinalStageLoops() {
	s.start([]engine.Stage{stage("a", clearRows)}, engine.WithFinalStage(engine.FinalStageLoop))

	s.notifier.EXPECT().RoundStarting()
	s.notifier.EXPECT().PelletConsumed().Times(2)
	gomock.InOrder(
		s.notifier.EXPECT().RoundStateChanged(engine.StateReady),
		s.notifier.EXPECT().RoundStateChanged(engine.StatePlay),
		s.notifier.EXPECT().RoundStateChanged(engine.StateRoundClear),
		s.notifier.EXPECT().RoundStateChanged(engine.StatePlay),
		s.notifier.EXPECT().RoundStateChanged(engine.StateRoundClear),
	)

	s.Require().NoError(s.eng.NewGame())
	s.run(7500 * time.Millisecond)

	_, index := s.eng.Stage()
	s.Equal(0, index)
	s.Equal(engine.StateRoundClear, s.eng.State())
	s.Equal(20, s.eng.Player().Score)
}

func (s *EngineSuite) TestDeathAndRespawn() {
	s.start([]engine.Stage{stage("a", openRows, roomGhost(3))})
	s.allowNoise()
	s.notifier.EXPECT().PlayerKilled()

	s.Require().NoError(s.eng.NewGame())
	s.run(4500 * time.Millisecond)

	ghost := s.eng.Ghosts()[0]
	ghost.Pos = s.eng.Player().Pos
	s.run(tick)

	s.Equal(engine.StateLifeLost, s.eng.State())
	s.Equal(2, s.eng.Player().Lives)
	s.True(s.eng.Player().Busy())
	s.True(s.eng.Player().Vel.IsZero())

	s.run(990 * time.Millisecond)
	s.False(ghost.Hidden())
	s.False(s.eng.Player().Killed())

	s.run(tick)
	s.True(ghost.Hidden(), "ghosts reset after the death pause")
	s.Equal(engine.Tile{X: 3, Y: 3}.Center(), ghost.Pos)
	s.True(s.eng.Player().Killed())

	s.run(1390 * time.Millisecond)
	s.Equal(engine.StateLifeLost, s.eng.State())

	s.run(tick)
	s.Equal(engine.StatePlay, s.eng.State())
	s.False(s.eng.Player().Busy())
	s.False(ghost.Hidden())
	s.Equal(2, s.eng.Player().Lives)
}

func (s *EngineSuite) TestDeathPauseHoldsGhosts() {
	waiting := roomGhost(4)
	waiting.Delay = 300 * time.Millisecond
	s.start([]engine.Stage{stage("a", openRows, roomGhost(2), waiting)})
	s.allowNoise()
	s.notifier.EXPECT().PlayerKilled()

	s.Require().NoError(s.eng.NewGame())
	s.run(4500 * time.Millisecond)
	s.Require().True(s.eng.Scheduler().Exists("ghost1_release"))

	s.eng.Ghosts()[0].Pos = s.eng.Player().Pos
	s.run(tick)
	s.Require().Equal(engine.StateLifeLost, s.eng.State())
	s.False(s.eng.Scheduler().Exists("ghost1_release"), "release held back by the death")

	ghost := s.eng.Ghosts()[1]
	start := ghost.Pos
	for i := 0; i < 99; i++ {
		s.run(tick)
		s.Equal(start, ghost.Pos)
		s.True(ghost.Vel.IsZero())
	}
}

func (s *EngineSuite) TestGameOverReturnsToMenu() {
	tuning := engine.DefaultTuning()
	tuning.Lives = 1
	s.start([]engine.Stage{stage("a", openRows, roomGhost(3))}, engine.WithTuning(tuning))
	s.allowNoise()
	s.notifier.EXPECT().PlayerKilled()

	s.Require().NoError(s.eng.NewGame())
	s.run(4500 * time.Millisecond)

	s.eng.Ghosts()[0].Pos = s.eng.Player().Pos
	s.run(tick)
	s.Equal(0, s.eng.Player().Lives)

	s.run(2400 * time.Millisecond)
	s.Equal(engine.StateGameOver, s.eng.State())
	s.True(s.eng.Frozen())
	s.Equal(10, s.eng.HighScore(), "taken as the game ends")

	s.run(1200 * time.Millisecond)
	s.Equal(engine.StateMenu, s.eng.State())
	s.Equal(10, s.eng.HighScore())
}

func (s *EngineSuite) TestCaptureBonusDoubles() {
	s.start([]engine.Stage{stage("a", powerRows, roomGhost(2), roomGhost(3), roomGhost(4))})
	s.allowNoise()
	gomock.InOrder(
		s.notifier.EXPECT().GhostCaptured(200),
		s.notifier.EXPECT().GhostCaptured(400),
		s.notifier.EXPECT().GhostCaptured(800),
	)

	s.Require().NoError(s.eng.NewGame())
	s.run(4500 * time.Millisecond)

	s.Equal(50, s.eng.Player().Score)
	s.True(s.eng.Scheduler().Exists(engine.TimerEvadeWindow))
	for _, g := range s.eng.Ghosts() {
		s.Equal(engine.ModeEvade, g.Mode())
	}

	expected := []int{250, 650, 1450}
	for i, g := range s.eng.Ghosts() {
		g.Pos = s.eng.Player().Pos
		s.run(tick)
		s.Equal(engine.ModeCaptured, g.Mode())
		s.True(g.ShowingScore())
		s.Equal(expected[i], s.eng.Player().Score)
	}
	s.Equal(3, s.eng.CapturedThisWindow())
	s.Equal(engine.StatePlay, s.eng.State(), "captured ghosts do not kill")

	s.run(s.eng.Tuning().EvadeWindow())
	s.Equal(0, s.eng.CapturedThisWindow())
	for _, g := range s.eng.Ghosts() {
		s.False(g.Guarded())
	}
}

func (s *EngineSuite) TestEvadeWindowEndsGhostByGhost() {
	s.start([]engine.Stage{stage("a", powerRows, roomGhost(3))})
	s.allowNoise()

	s.Require().NoError(s.eng.NewGame())
	s.run(4500 * time.Millisecond)
	ghost := s.eng.Ghosts()[0]
	s.Equal(engine.ModeEvade, ghost.Mode())

	s.run(6 * time.Second)
	s.Equal(engine.ModeEvadeEnding, ghost.Mode())

	s.run(4500 * time.Millisecond)
	s.Equal(engine.ModePursuit, ghost.Mode())
	s.False(s.eng.Scheduler().Exists("ghost0_evade"))
}

func (s *EngineSuite) TestPauseFreezesTimers() {
	s.start([]engine.Stage{stage("a", openRows)})
	s.allowNoise()

	s.Require().NoError(s.eng.NewGame())
	s.run(time.Second)

	s.eng.Pause()
	s.True(s.eng.Paused())
	before := s.eng.Tick()
	s.run(10 * time.Second)
	s.Equal(before, s.eng.Tick(), "no ticks while paused")
	s.Equal(engine.StateReady, s.eng.State())

	s.eng.Resume()
	s.run(3490 * time.Millisecond)
	s.Equal(engine.StateReady, s.eng.State())
	s.run(tick)
	s.Equal(engine.StatePlay, s.eng.State())
}

func (s *EngineSuite) TestPauseIgnoredInMenu() {
	s.start([]engine.Stage{stage("a", openRows)})

	s.eng.Pause()
	s.False(s.eng.Paused())
}

func TestNewRejectsBrokenStages(t *testing.T) {
	_, err := engine.New(nil)
	assert.ErrorIs(t, err, engine.ErrNoStages)

	noRespawn := stage("a", openRows)
	noRespawn.Respawn = nil
	_, err = engine.New([]engine.Stage{noRespawn})
	assert.ErrorIs(t, err, engine.ErrMissingRespawn)

	_, err = engine.New([]engine.Stage{stage("a", []string{".  ", "  ."})})
	assert.ErrorIs(t, err, engine.ErrNoWalls)
}

func TestParseFinalStage(t *testing.T) {
	p, err := engine.ParseFinalStage("finish")
	require.NoError(t, err)
	assert.Equal(t, engine.FinalStageFinish, p)

	p, err = engine.ParseFinalStage("")
	require.NoError(t, err)
	assert.Equal(t, engine.FinalStageLoop, p)

	_, err = engine.ParseFinalStage("forever")
	assert.Error(t, err)
}

// Two engines with the same seed, stages and input produce identical states.
func TestDeterministicReplay(t *testing.T) {
	stages, err := levels.Pack(levels.PackClassic)
	require.NoError(t, err)

	run := func() []engine.Snapshot {
		clock := sched.NewManualClock(time.Unix(0, 0))
		in := &heldKey{}
		eng, err := engine.New(stages,
			engine.WithClock(clock),
			engine.WithInput(in),
			engine.WithSeed(42),
		)
		require.NoError(t, err)
		require.NoError(t, eng.NewGame())

		script := []engine.Direction{engine.DirDown, engine.DirRight, engine.DirUp, engine.DirLeft}
		var snaps []engine.Snapshot
		for i := 0; i < 3000; i++ {
			if i%120 == 0 {
				in.dir, in.held = script[(i/120)%len(script)], true
			}
			clock.Advance(16 * time.Millisecond)
			eng.Advance()
			if i%100 == 0 {
				snaps = append(snaps, eng.Snapshot())
			}
		}
		return snaps
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)

	last := first[len(first)-1]
	assert.Greater(t, last.Tick, uint64(0))
	assert.Len(t, last.Ghosts, 4)
}
