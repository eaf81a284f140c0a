package runner

import "testing"

func TestEffectsExpiry(t *testing.T) {
	var e Effects
	e.Activate(KindSlowMo, 100, 0)

	if expired := e.Tick(60); len(expired) != 0 {
		t.Fatalf("Tick(60) expired %v, expected none", expired)
	}
	if got := e.Get(KindSlowMo).RemainingMs; got != 40 {
		t.Errorf("RemainingMs = %g, expected 40", got)
	}

	expired := e.Tick(40)
	if len(expired) != 1 || expired[0] != KindSlowMo {
		t.Fatalf("Tick(40) expired %v, expected [slowmo]", expired)
	}
	if got := e.Get(KindSlowMo); got != (Effect{}) {
		t.Errorf("expired slot = %+v, expected zero", got)
	}
}

func TestEffectsRefreshResetsDuration(t *testing.T) {
	var e Effects
	e.Activate(KindFrenzy, 5000, 0)
	e.Tick(4000)
	e.Activate(KindFrenzy, 5000, 0)

	if got := e.Get(KindFrenzy).RemainingMs; got != 5000 {
		t.Errorf("RemainingMs after refresh = %g, expected 5000", got)
	}

	e.Activate(KindPhase, 0, 0)
	if e.Active(KindPhase) {
		t.Error("zero duration should not activate")
	}
}

func TestEffectsAbsorbHit(t *testing.T) {
	var e Effects
	if e.AbsorbHit() {
		t.Fatal("AbsorbHit() without a shield should fail")
	}

	e.Activate(KindShield, 8000, 2)
	results := []bool{e.AbsorbHit(), e.AbsorbHit(), e.AbsorbHit()}
	expected := []bool{true, true, false}
	for i := range results {
		if results[i] != expected[i] {
			t.Errorf("AbsorbHit() #%d = %v, expected %v", i+1, results[i], expected[i])
		}
	}
	if e.Active(KindShield) {
		t.Error("shield should drop after its last hit")
	}
}

func TestEffectsIndependent(t *testing.T) {
	var e Effects
	e.Activate(KindShield, 100, 1)
	e.Activate(KindPhase, 300, 0)

	e.Tick(150)
	kinds := e.ActiveKinds()
	if len(kinds) != 1 || kinds[0] != KindPhase {
		t.Errorf("ActiveKinds() = %v, expected [phase]", kinds)
	}

	e.Deactivate(KindPhase)
	if e.Active(KindPhase) {
		t.Error("Deactivate() should clear the effect")
	}

	e.Activate(KindShield, 100, 1)
	e.Reset()
	if len(e.ActiveKinds()) != 0 {
		t.Error("Reset() should clear every effect")
	}
}

func TestKindLabels(t *testing.T) {
	tests := []struct {
		kind  Kind
		name  string
		label string
	}{
		{KindShield, "shield", "Shield"},
		{KindSlowMo, "slowmo", "Slow-Mo"},
		{KindDoubleJump, "doublejump", "Air Dash"},
		{KindPhase, "phase", "Phase Shift"},
		{KindFrenzy, "frenzy", "Score Frenzy"},
		{KindCount, "unknown", "?"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Kind(%d).String() = %q, expected %q", tt.kind, got, tt.name)
		}
		if got := tt.kind.Label(); got != tt.label {
			t.Errorf("Kind(%d).Label() = %q, expected %q", tt.kind, got, tt.label)
		}
	}
}
