package runner

// Outcome is the result of hazard collision for one tick.
type Outcome int

const (
	OutcomeNone     Outcome = iota // No hazard touched, or phase active
	OutcomeShielded                // Shield absorbed the hit
	OutcomeLifeLost                // A life was lost and the run resumed
	OutcomeGameOver                // Lives exhausted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeShielded:
		return "shielded"
	case OutcomeLifeLost:
		return "life-lost"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// resolveCollisions tests the actor's hit box against every hazard.
// The first overlap is either absorbed by the shield, which removes the
// obstacle, or ends the run and starts the life-loss sequence.
func (s *Sim) resolveCollisions() Outcome {
	if s.effects.Active(KindPhase) {
		return OutcomeNone
	}

	box := s.actor.Box().Inset(s.cfg.Actor.Hitbox)
	i := s.obstacles.FirstHit(box)
	if i < 0 {
		return OutcomeNone
	}
	hit := s.obstacles.At(i)

	if s.effects.AbsorbHit() {
		s.obstacles.Remove(i)
		s.emit(Event{Kind: EventShieldHit, Name: hit.Type, X: hit.X, Y: hit.Y})
		return OutcomeShielded
	}

	s.run.Running = false
	s.run.Crashed = true
	return s.loseLife(hit)
}

// loseLife spends a life. With lives left the run resets in place keeping
// score and speed; otherwise the game is over.
func (s *Sim) loseLife(hit Obstacle) Outcome {
	if s.run.Lives <= 0 {
		s.gameOver()
		return OutcomeGameOver
	}

	s.run.Lives--
	s.emit(Event{Kind: EventLifeLost, Name: hit.Type, X: s.actor.X, Y: s.actor.Y})
	if s.run.Lives > 0 {
		s.log.Debug("life lost", "obstacle", hit.Type, "lives", s.run.Lives, "score", s.run.Score)
		s.resetRun(true)
		return OutcomeLifeLost
	}

	s.gameOver()
	return OutcomeGameOver
}

// gameOver submits the final score once per game, and only for a named player.
func (s *Sim) gameOver() {
	s.emit(Event{Kind: EventGameOver, Score: s.run.Score})
	s.log.Debug("game over", "player", s.player, "score", s.run.Score)

	if s.run.ScorePosted || s.player == "" {
		return
	}
	s.run.ScorePosted = true
	if s.sink != nil {
		s.sink.SubmitScore(s.player, s.run.Score)
	}
}
