package states

import "fmt"

// GamePhase is where a session is in its lifecycle
type GamePhase int

const (
	PhaseInitializing GamePhase = iota // grid, players and starting kits being built
	PhasePlaying                       // players take turns issuing commands
	PhaseGameOver                      // at most one player still stands
	PhaseReset                         // session torn down before a new one starts
)

var phaseNames = [...]string{
	PhaseInitializing: "Initializing",
	PhasePlaying:      "Playing",
	PhaseGameOver:     "GameOver",
	PhaseReset:        "Reset",
}

// transitions is the lifecycle graph. Playing may jump to Reset when a
// session is abandoned.
var transitions = map[GamePhase][]GamePhase{
	PhaseInitializing: {PhasePlaying},
	PhasePlaying:      {PhaseGameOver, PhaseReset},
	PhaseGameOver:     {PhaseReset},
	PhaseReset:        {PhaseInitializing},
}

func (p GamePhase) valid() bool { return p >= 0 && int(p) < len(phaseNames) }

func (p GamePhase) String() string {
	if !p.valid() {
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
	return phaseNames[p]
}

func (p GamePhase) IsTerminal() bool        { return p == PhaseGameOver }
func (p GamePhase) CanReceiveActions() bool { return p == PhasePlaying }

// AllowedTransitions returns a copy of the phases reachable from p
func (p GamePhase) AllowedTransitions() []GamePhase {
	return append([]GamePhase{}, transitions[p]...)
}

func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, next := range transitions[p] {
		if next == target {
			return true
		}
	}
	return false
}

// ParsePhase is the inverse of String for known phases
func ParsePhase(s string) (GamePhase, bool) {
	for p, name := range phaseNames {
		if name == s {
			return GamePhase(p), true
		}
	}
	return PhaseInitializing, false
}
