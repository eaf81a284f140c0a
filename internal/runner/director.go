package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// SpawnContext is the per-tick state the director consults.
type SpawnContext struct {
	NowMs           float64
	Difficulty      int
	SpeedMultiplier float64
}

// Director decides every tick whether to advance the pattern queue or to
// attempt a procedural spawn. Every creation attempt goes through the same
// gates: lane occupancy, active cap, cooldown locks and minimum gap.
type Director struct {
	cfg       config.SpawnConfig
	world     config.WorldConfig
	catalog   *Catalog
	patterns  *PatternLibrary
	obstacles *Registry
	rng       Rand
	log       *log.Logger

	queue   []PatternStep
	delayMs float64

	laneLocks  map[Lane]float64
	globalLock float64

	lastType    string
	repeatCount int

	countdownMs       float64
	patternCooldownMs float64
	nextPatternScore  float64
}

// NewDirector wires a director to its catalog, pattern library and registry.
func NewDirector(cfg config.RunnerConfig, catalog *Catalog, patterns *PatternLibrary, obstacles *Registry, rng Rand, logger *log.Logger) *Director {
	d := &Director{
		cfg:       cfg.Spawn,
		world:     cfg.World,
		catalog:   catalog,
		patterns:  patterns,
		obstacles: obstacles,
		rng:       rng,
		log:       logger,
		laneLocks: make(map[Lane]float64, 3),
	}
	d.ResetRun()
	return d
}

// ResetRun clears the queue, every lock and the repeat history, and restarts
// the procedural countdown.
func (d *Director) ResetRun() {
	d.queue = d.queue[:0]
	d.delayMs = 0
	d.globalLock = 0
	clear(d.laneLocks)
	d.lastType = ""
	d.repeatCount = 0
	d.countdownMs = d.cfg.InitialDelayMs
	d.patternCooldownMs = 0
}

// SchedulePattern sets the next pattern threshold a random gap past score.
func (d *Director) SchedulePattern(score int) {
	gap := between(d.rng, d.cfg.PatternScoreGap.Min, d.cfg.PatternScoreGap.Max)
	d.nextPatternScore = float64(score) + gap
}

// NextPatternScore returns the score at which the next pattern triggers.
func (d *Director) NextPatternScore() float64 {
	return d.nextPatternScore
}

// QueueLen returns the number of pending pattern steps.
func (d *Director) QueueLen() int {
	return len(d.queue)
}

// Update runs one tick of the spawn state machine.
func (d *Director) Update(deltaMs float64, ctx SpawnContext) {
	if len(d.queue) > 0 {
		d.processQueue(deltaMs, ctx)
		return
	}

	d.patternCooldownMs = max(0, d.patternCooldownMs-deltaMs)
	if d.patternCooldownMs > 0 {
		return
	}

	d.countdownMs -= deltaMs
	if d.countdownMs <= 0 {
		d.attemptProcedural(ctx)
		d.countdownMs = d.cfg.SpawnInterval(ctx.Difficulty, d.rng.Float64())
	}
}

// processQueue advances the head of the pattern queue. A blocked step is
// retried after a backoff and never dropped; a step naming an unknown
// template is dropped.
func (d *Director) processQueue(deltaMs float64, ctx SpawnContext) {
	d.delayMs = max(0, d.delayMs-deltaMs)
	if d.delayMs > 0 {
		return
	}

	step := d.queue[0]
	tpl, err := d.catalog.Lookup(step.Template)
	if err != nil {
		d.log.Debug("dropping pattern step", "pattern", step.Pattern, "index", step.Index, "err", err)
		d.pop()
		d.delayMs = step.WaitMs
		return
	}

	opts := step.Options(d.view(tpl))
	if _, ok := d.Spawn(tpl, opts, ctx); ok {
		d.pop()
		d.delayMs = step.WaitMs
		d.recordHistory(tpl.Name)
		return
	}
	d.delayMs = max(d.cfg.RetryBackoffMs, step.WaitMs)
}

func (d *Director) pop() {
	d.queue = append(d.queue[:0], d.queue[1:]...)
}

func (d *Director) view(tpl Template) PatternView {
	edge, ok := d.obstacles.FurthestEdge()
	return PatternView{
		Template:      tpl,
		GroundY:       d.world.GroundY(),
		WorldWidth:    d.world.Width,
		Lead:          d.cfg.PatternLead,
		DefaultMinGap: d.cfg.DefaultMinGap,
		FurthestEdge:  edge,
		HasEdge:       ok,
	}
}

// attemptProcedural picks one template and tries to spawn it once.
// A rejected attempt is skipped until the next countdown expiry.
func (d *Director) attemptProcedural(ctx SpawnContext) {
	tpl, ok := d.PickProcedural(ctx)
	if !ok {
		return
	}
	gap := d.cfg.DynamicMinGap(tpl.MinGap, ctx.Difficulty)
	if _, ok := d.Spawn(tpl, SpawnOptions{MinGap: Some(gap)}, ctx); ok {
		d.recordHistory(tpl.Name)
	}
}

// PickProcedural filters the catalog by the speed and difficulty gates,
// excludes the last type once its streak hit the cap (unless it is the only
// candidate), then draws by weight.
func (d *Director) PickProcedural(ctx SpawnContext) (Template, bool) {
	candidates := d.catalog.Eligible(ctx.SpeedMultiplier, ctx.Difficulty)
	if len(candidates) == 0 {
		return Template{}, false
	}

	if d.lastType != "" && d.repeatCount >= d.cfg.MaxSameTypeStreak && len(candidates) > 1 {
		filtered := make([]Template, 0, len(candidates))
		for _, t := range candidates {
			if t.Name != d.lastType {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	return pickWeighted(d.rng, candidates, func(t Template) float64 { return t.Weight })
}

// CanSpawn reports whether the lane, cap and cooldown gates admit a template now.
func (d *Director) CanSpawn(tpl Template, nowMs float64) bool {
	if limit := d.cfg.LaneLimit(string(tpl.Lane)); limit > 0 && d.obstacles.ActiveInLane(tpl.Lane) >= limit {
		return false
	}
	if d.cfg.MaxActive > 0 && d.obstacles.ActiveCount() >= d.cfg.MaxActive {
		return false
	}
	if nowMs < d.globalLock || nowMs < d.laneLocks[tpl.Lane] {
		return false
	}
	return true
}

// Spawn materializes an obstacle from a template if every gate passes.
// The obstacle is pushed right to keep the minimum gap from the furthest
// edge; a push larger than the configured maximum shift rejects the attempt.
func (d *Director) Spawn(tpl Template, opts SpawnOptions, ctx SpawnContext) (Obstacle, bool) {
	if !d.CanSpawn(tpl, ctx.NowMs) {
		return Obstacle{}, false
	}

	width := tpl.Width.sample(d.rng)
	height := tpl.Height.sample(d.rng)
	groundY := d.world.GroundY()

	startX := opts.StartX.Or(d.world.Width + width)
	gap := opts.MinGap.Or(d.defaultGap(tpl))
	x := startX
	if edge, ok := d.obstacles.FurthestEdge(); ok {
		x = max(startX, edge+gap)
	}
	if d.cfg.MaxGapShift > 0 && x-startX > d.cfg.MaxGapShift {
		return Obstacle{}, false
	}

	y := groundY - height - tpl.SpawnElevation
	if opts.StartY.Ok {
		y = opts.StartY.V
	} else if tpl.Elevation != nil {
		y -= tpl.Elevation.sample(d.rng)
	}

	o := Obstacle{
		Type:        tpl.Name,
		Lane:        tpl.Lane,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Hitbox:      tpl.Hitbox,
		Behavior:    tpl.Behavior(),
		SpeedOffset: opts.SpeedOffset.Or(tpl.SpeedOffset.sample(d.rng)),
	}
	switch {
	case tpl.Rolling != nil:
		o.RollScale = tpl.Rolling.RollScale
	case tpl.Falling != nil:
		o.Gravity = tpl.Falling.Gravity
		if opts.DropDelayMs.Ok {
			o.DropDelayMs = opts.DropDelayMs.V
		} else {
			o.DropDelayMs = tpl.Falling.DropDelay.sample(d.rng)
		}
	case tpl.Meteor != nil:
		o.VerticalSpeed = opts.VerticalSpeed.Or(tpl.Meteor.DescentSpeed)
	}

	d.obstacles.Add(o)
	d.recordLocks(tpl, ctx.NowMs)
	return o, true
}

func (d *Director) defaultGap(tpl Template) float64 {
	if tpl.MinGap > 0 {
		return tpl.MinGap
	}
	return d.cfg.DefaultMinGap
}

func (d *Director) recordLocks(tpl Template, nowMs float64) {
	d.laneLocks[tpl.Lane] = nowMs + d.cfg.LaneCooldown(string(tpl.Lane))
	d.globalLock = nowMs + d.cfg.GlobalCooldownMs
}

func (d *Director) recordHistory(name string) {
	if d.lastType == name {
		d.repeatCount++
		return
	}
	d.lastType = name
	d.repeatCount = 1
}

// MaybeTriggerPattern enqueues a weighted pattern once score crosses the
// next threshold while the queue is idle. It schedules the following
// threshold, starts the post-trigger cooldown and clears the repeat history.
func (d *Director) MaybeTriggerPattern(score int, difficulty int) (string, bool) {
	if len(d.queue) > 0 || float64(score) < d.nextPatternScore {
		return "", false
	}

	var name string
	if p, ok := d.patterns.Choose(d.rng, difficulty); ok {
		steps := p.Steps()
		if len(steps) > 0 {
			d.queue = append(d.queue, steps...)
			d.delayMs = 0
			name = p.Name
		}
	}
	d.lastType = ""
	d.repeatCount = 0

	d.SchedulePattern(score)
	d.patternCooldownMs = d.cfg.PatternCooldownMs
	return name, name != ""
}
