// Package runner implements the winter runner simulation: actor physics,
// effect timers, the obstacle registry, the spawn director with its pattern
// library, the power-up scheduler, collision outcomes and score progression.
//
// All state lives in one Sim value advanced by Step; there are no package
// level singletons. The simulation is single-threaded and never blocks.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// ScoreSink receives the final score of a finished game.
// Implementations must return immediately; delivery is their concern.
type ScoreSink interface {
	SubmitScore(name string, score int)
}

// RunState is the run-level state owned by the simulation.
type RunState struct {
	Running         bool
	Crashed         bool
	Score           int
	SpeedMultiplier float64
	Lives           int
	ScorePosted     bool
}

// Sim is the explicit simulation context.
type Sim struct {
	cfg    config.RunnerConfig
	rng    Rand
	sink   ScoreSink
	log    *log.Logger
	player string

	catalog   *Catalog
	patterns  *PatternLibrary
	obstacles *Registry
	director  *Director
	powerups  *PowerUpScheduler
	effects   Effects
	actor     Actor
	run       RunState

	nowMs              float64
	nextSpeedMilestone int
	lastLifeMilestone  int
	dustTimerMs        float64
	events             []Event
}

// Option configures a Sim.
type Option func(*simOptions)

type simOptions struct {
	rng       Rand
	seed      int64
	sink      ScoreSink
	logger    *log.Logger
	player    string
	templates []Template
	patterns  []Pattern
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(o *simOptions) { o.seed = seed }
}

// WithRand injects a random source, overriding WithSeed.
func WithRand(r Rand) Option {
	return func(o *simOptions) { o.rng = r }
}

// WithSink sets where final scores are submitted.
func WithSink(s ScoreSink) Option {
	return func(o *simOptions) { o.sink = s }
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(o *simOptions) { o.logger = l }
}

// WithPlayer sets the player name used for score submission.
func WithPlayer(name string) Option {
	return func(o *simOptions) { o.player = name }
}

// WithTemplates replaces the obstacle catalog.
func WithTemplates(ts []Template) Option {
	return func(o *simOptions) { o.templates = ts }
}

// WithPatterns replaces the pattern library.
func WithPatterns(ps []Pattern) Option {
	return func(o *simOptions) { o.patterns = ps }
}

// New validates the configuration and catalogs and returns an idle Sim.
// The first run begins with Start or a start input.
func New(cfg config.RunnerConfig, opts ...Option) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	o := simOptions{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(o.seed)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.templates == nil {
		o.templates = DefaultTemplates()
	}
	if o.patterns == nil {
		o.patterns = DefaultPatterns()
	}

	catalog, err := NewCatalog(o.templates)
	if err != nil {
		return nil, err
	}
	patterns, err := NewPatternLibrary(o.patterns)
	if err != nil {
		return nil, err
	}

	s := &Sim{
		cfg:       cfg,
		rng:       o.rng,
		sink:      o.sink,
		log:       o.logger,
		player:    o.player,
		catalog:   catalog,
		patterns:  patterns,
		obstacles: NewRegistry(cfg.World),
		powerups:  NewPowerUpScheduler(cfg.PowerUps, cfg.World),
		actor:     NewActor(cfg),
		run: RunState{
			SpeedMultiplier: 1,
			Lives:           cfg.Scoring.MaxLives,
		},
		nextSpeedMilestone: cfg.Scoring.MilestoneScore,
	}
	s.director = NewDirector(cfg, catalog, patterns, s.obstacles, s.rng, s.log)
	return s, nil
}

// Config returns the configuration the Sim runs with.
func (s *Sim) Config() config.RunnerConfig {
	return s.cfg
}

// SetPlayer changes the name used for the next score submission.
func (s *Sim) SetPlayer(name string) {
	s.player = name
}

// Player returns the current player name.
func (s *Sim) Player() string {
	return s.player
}

// Start begins a fresh game: full lives, score 0, schedules reset.
func (s *Sim) Start() {
	s.run.Lives = s.cfg.Scoring.MaxLives
	s.run.ScorePosted = false
	s.powerups.ResetSchedule()
	s.director.SchedulePattern(0)
	s.lastLifeMilestone = 0
	s.resetRun(false)
	s.log.Debug("run started", "player", s.player, "next_pattern", s.director.NextPatternScore())
}

// resetRun clears transient run state. Score and speed survive when keep is
// set, which is how a lost life resumes the same game.
func (s *Sim) resetRun(keep bool) {
	s.run.Running = true
	s.run.Crashed = false
	if !keep {
		s.run.Score = 0
		s.run.SpeedMultiplier = 1
		s.nextSpeedMilestone = s.cfg.Scoring.MilestoneScore
	}

	s.obstacles.Clear()
	s.powerups.ClearPickups()
	s.effects.Reset()
	s.actor.Reset(s.cfg.World.GroundY())
	s.director.ResetRun()

	s.nowMs = 0
	s.dustTimerMs = 0
}

// Step advances the simulation by one frame and returns the resulting snapshot.
// While no run is active, a restart or jump input starts a new game.
func (s *Sim) Step(deltaMs float64, in core.InputFrame) Snapshot {
	s.events = s.events[:0]

	if !s.run.Running {
		if in.Has(core.ActionRestart) || in.Has(core.ActionJump) {
			s.Start()
			s.emit(Event{Kind: EventRunStarted})
		}
		return s.snapshot()
	}

	dt := ClampDelta(deltaMs, s.cfg.Physics.MaxDeltaMs)
	s.nowMs += dt

	if in.Has(core.ActionJump) {
		s.emitActor(s.actor.RequestJump(s.cfg.Physics, s.effects.Active(KindDoubleJump)))
	}

	for _, k := range s.effects.Tick(dt) {
		if k == KindDoubleJump {
			s.actor.ExtraJumpAvailable = false
		}
		s.emit(Event{Kind: EventEffectExpired, Power: k})
	}

	s.emitActor(s.actor.Integrate(dt, s.cfg.Physics, s.cfg.World.GroundY(), s.effects.Active(KindDoubleJump)))

	eff := s.EffectiveSpeedMultiplier()
	if s.actor.Grounded {
		s.actor.AnimMs += dt * eff
	} else {
		s.actor.AnimMs += dt * 0.6
	}

	difficulty := s.Difficulty()
	s.director.Update(dt, SpawnContext{
		NowMs:           s.nowMs,
		Difficulty:      difficulty,
		SpeedMultiplier: s.run.SpeedMultiplier,
	})

	worldSpeed := s.cfg.Physics.BaseSpeed * eff
	if passed := s.obstacles.Update(dt, worldSpeed, s.actor.X); passed > 0 {
		s.run.Score += passed * s.cfg.Scoring.PassBonus
	}

	s.updatePowerUps(dt, worldSpeed)

	if name, ok := s.director.MaybeTriggerPattern(s.run.Score, s.Difficulty()); ok {
		s.log.Debug("pattern started", "pattern", name, "score", s.run.Score, "next", s.director.NextPatternScore())
		s.emit(Event{Kind: EventPatternStarted, Name: name})
	}

	s.emitDust(dt)
	s.accrueScore(dt)
	s.applyMilestones()
	s.resolveCollisions()

	return s.snapshot()
}

func (s *Sim) updatePowerUps(dt, worldSpeed float64) {
	for _, k := range s.powerups.Update(s.run.Score) {
		s.emit(Event{Kind: EventPowerUpSpawned, Power: k})
	}
	s.powerups.Move(dt, worldSpeed)

	box := s.actor.Box().Inset(core.Uniform(s.cfg.Actor.PickupInset))
	for _, k := range s.powerups.Collect(box) {
		s.applyPowerUp(k)
		s.emit(Event{Kind: EventPickup, Power: k, X: s.actor.X, Y: s.actor.Y})
	}
}

// applyPowerUp activates an effect, resetting its duration. Double jump also
// arms the air jump immediately.
func (s *Sim) applyPowerUp(k Kind) {
	spec := Spec(k)
	s.effects.Activate(k, spec.DurationMs, spec.Hits)
	if k == KindDoubleJump {
		s.actor.ExtraJumpAvailable = true
	}
}

func (s *Sim) emitDust(dt float64) {
	if !s.actor.Grounded || s.cfg.Scoring.DustIntervalMs <= 0 {
		return
	}
	s.dustTimerMs += dt * s.EffectiveSpeedMultiplier()
	for s.dustTimerMs > s.cfg.Scoring.DustIntervalMs {
		s.dustTimerMs -= s.cfg.Scoring.DustIntervalMs
		s.emit(Event{Kind: EventDust, X: s.actor.X + 10, Y: s.actor.Y - 3})
	}
}

func (s *Sim) emitActor(ev ActorEvent) {
	if ev.Has(ActorLanded) {
		s.emit(Event{Kind: EventLand, X: s.actor.X, Y: s.actor.Y})
	}
	if ev.Has(ActorJumped) {
		s.emit(Event{Kind: EventJump, X: s.actor.X, Y: s.actor.Y})
	}
	if ev.Has(ActorAirJumped) {
		s.emit(Event{Kind: EventAirJump, X: s.actor.X, Y: s.actor.Y})
	}
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}
