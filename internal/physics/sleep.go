package physics

// SleepPhase is the discrete activity state of a body.
type SleepPhase int

const (
	// Active bodies integrate gravity and motion and initiate collisions.
	Active SleepPhase = iota
	// Asleep bodies skip their own update and sit as static obstacles
	// until another body knocks them awake.
	Asleep
)

// DefaultWakeBudget is the number of slow frames a body tolerates before
// falling asleep, and the budget restored on wake.
const DefaultWakeBudget = 10

// SleepState tracks the Active/Asleep transition. Every frame the body's
// speed stays below the freeze threshold consumes one unit of budget; once
// the budget is spent the body is asleep. A fast frame leaves the remaining
// budget alone (the countdown does not refill from a brief burst of motion).
// Only Wake, driven by an external impulse, reactivates a sleeping body.
type SleepState struct {
	phase  SleepPhase
	budget int
}

// NewSleepState returns an Active state with the given budget.
func NewSleepState(budget int) SleepState {
	return SleepState{phase: Active, budget: budget}
}

// Phase returns the current activity state.
func (s SleepState) Phase() SleepPhase {
	return s.phase
}

// Budget returns the remaining slow frames before the body falls asleep.
func (s SleepState) Budget() int {
	return s.budget
}

// Asleep reports whether the body is sleeping.
func (s SleepState) Asleep() bool {
	return s.phase == Asleep
}

// Tick consumes one unit of budget when speed is below the threshold and
// puts the state to sleep once the budget runs out. Call once per frame
// after the body has fully updated. No-op while asleep.
func (s *SleepState) Tick(speed, freezeThreshold float32) {
	if s.phase == Asleep {
		return
	}
	if speed < freezeThreshold {
		s.budget--
		if s.budget <= 0 {
			s.phase = Asleep
		}
	}
}

// Wake restores the full budget and reactivates the body.
func (s *SleepState) Wake(budget int) {
	s.phase = Active
	s.budget = budget
}
