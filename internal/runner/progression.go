package runner

import "math"

// Difficulty returns the discrete difficulty level derived from score.
func (s *Sim) Difficulty() int {
	return s.cfg.Scoring.DifficultyLevel(s.run.Score)
}

// EffectiveSpeedMultiplier returns the speed multiplier after slow-mo.
func (s *Sim) EffectiveSpeedMultiplier() float64 {
	m := s.run.SpeedMultiplier
	if s.effects.Active(KindSlowMo) {
		m *= Spec(KindSlowMo).SpeedScale
	}
	return m
}

// SpeedKmh returns the current world speed for the HUD.
func (s *Sim) SpeedKmh() float64 {
	pxPerSecond := s.cfg.Physics.BaseSpeed * s.EffectiveSpeedMultiplier()
	return pxPerSecond / s.cfg.Scoring.PixelsPerMeter * 3.6
}

// accrueScore adds time-based score, scaled by the effective speed and by frenzy.
func (s *Sim) accrueScore(dt float64) {
	gain := math.Floor(dt * s.cfg.Scoring.ScoreRate * s.EffectiveSpeedMultiplier())
	if s.effects.Active(KindFrenzy) {
		gain = math.Floor(gain * Spec(KindFrenzy).ScoreMultiplier)
	}
	s.run.Score += int(gain)
}

// applyMilestones drains every speed milestone the score crossed, so one
// large gain can raise the multiplier several times. The speed-up event fires
// once per tick however many milestones were drained. A coarser milestone
// grants a bonus life below the cap, at most once per milestone value.
func (s *Sim) applyMilestones() {
	sc := s.cfg.Scoring

	increased := false
	for s.run.Score >= s.nextSpeedMilestone && s.run.SpeedMultiplier < sc.MaxSpeedMultiplier {
		next := math.Min(sc.MaxSpeedMultiplier, s.run.SpeedMultiplier+sc.MilestoneIncrement)
		if next > s.run.SpeedMultiplier {
			increased = true
		}
		s.run.SpeedMultiplier = next
		s.nextSpeedMilestone += sc.MilestoneScore
	}
	if increased {
		s.emit(Event{Kind: EventSpeedUp})
		s.log.Debug("speed up", "multiplier", s.run.SpeedMultiplier, "score", s.run.Score)
	}

	milestone := sc.LifeMilestone(s.run.Score)
	if milestone <= s.lastLifeMilestone {
		return
	}
	if s.run.Lives < sc.MaxLives {
		s.run.Lives++
		s.emit(Event{Kind: EventBonusLife, X: s.actor.X, Y: s.actor.Y})
	}
	s.lastLifeMilestone = milestone
}
