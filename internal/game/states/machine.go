package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/gridwar/internal/game/events"
)

// State is one phase's behaviour. Validate guards entry, Enter and Exit
// run on the way in and out.
type State interface {
	Phase() GamePhase
	Enter(ctx *GameContext) error
	Exit(ctx *GameContext) error
	Validate(ctx *GameContext) error
}

// Transition is one completed phase change
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

const maxHistory = 256

// StateMachine drives a session through its phases and publishes a
// StateTransitionEvent after each completed transition.
type StateMachine struct {
	mu      sync.RWMutex
	phase   GamePhase
	states  map[GamePhase]State
	context *GameContext
	history []Transition
	events  events.Publisher
}

// NewStateMachine starts in PhaseInitializing with the built-in states
// registered. publisher may be nil.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		phase:   PhaseInitializing,
		states:  make(map[GamePhase]State, len(phaseNames)),
		context: ctx,
		events:  publisher,
	}
	for _, s := range []State{NewInitializingState(), NewPlayingState(), NewGameOverState(), NewResetState()} {
		sm.states[s.Phase()] = s
	}
	return sm
}

// RegisterState replaces the implementation for state.Phase()
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	sm.states[state.Phase()] = state
	sm.mu.Unlock()
}

func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.phase
}

func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.context
}

func (sm *StateMachine) CanTransitionTo(target GamePhase) bool {
	return sm.CurrentPhase().CanTransitionTo(target)
}

// TransitionTo moves to target. The phase is unchanged if the edge is not
// in the lifecycle graph, the target fails validation, or Enter fails.
// Exit errors are logged and do not block the move. The transition event
// is published after the lock is released, so handlers may read the phase.
func (sm *StateMachine) TransitionTo(target GamePhase, reason string) error {
	sm.mu.Lock()
	t, err := sm.move(target, reason)
	sm.mu.Unlock()
	if err != nil {
		return err
	}
	sm.announce(t)
	return nil
}

func (sm *StateMachine) move(target GamePhase, reason string) (Transition, error) {
	from := sm.phase
	if !from.CanTransitionTo(target) {
		return Transition{}, fmt.Errorf("invalid transition from %s to %s", from, target)
	}
	next, ok := sm.states[target]
	if !ok {
		return Transition{}, fmt.Errorf("no state registered for phase %s", target)
	}
	if err := next.Validate(sm.context); err != nil {
		return Transition{}, fmt.Errorf("cannot enter %s: %w", target, err)
	}

	if cur, ok := sm.states[from]; ok {
		if err := cur.Exit(sm.context); err != nil {
			sm.context.Logger.Error().Err(err).
				Stringer("from_phase", from).
				Stringer("to_phase", target).
				Msg("Error exiting state")
		}
	}

	sm.phase = target
	if err := next.Enter(sm.context); err != nil {
		sm.phase = from
		return Transition{}, fmt.Errorf("failed to enter state %s: %w", target, err)
	}

	t := Transition{From: from, To: target, Timestamp: time.Now(), Reason: reason}
	sm.record(t)
	return t, nil
}

func (sm *StateMachine) record(t Transition) {
	sm.history = append(sm.history, t)
	if over := len(sm.history) - maxHistory; over > 0 {
		sm.history = append(sm.history[:0], sm.history[over:]...)
	}
}

// announce must be called without sm.mu held
func (sm *StateMachine) announce(t Transition) {
	sm.context.Logger.Info().
		Stringer("from_phase", t.From).
		Stringer("to_phase", t.To).
		Str("reason", t.Reason).
		Msg("State transition completed")
	if sm.events != nil {
		sm.events.Publish(events.NewStateTransitionEvent(sm.context.GameID, t.From.String(), t.To.String(), t.Reason))
	}
}

// GetHistory returns a copy of the completed transitions, oldest first
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return append([]Transition(nil), sm.history...)
}

// Reset walks the machine back to PhaseInitializing through PhaseReset and
// clears the history. It is a no-op when already initializing. Transition
// events are published once the walk has finished.
func (sm *StateMachine) Reset(reason string) error {
	sm.mu.Lock()
	var done []Transition
	var err error
	for sm.phase != PhaseInitializing {
		next := PhaseReset
		if sm.phase == PhaseReset {
			next = PhaseInitializing
		}
		var t Transition
		if t, err = sm.move(next, reason); err != nil {
			break
		}
		done = append(done, t)
	}
	if err == nil {
		sm.history = nil
	}
	sm.mu.Unlock()

	for _, t := range done {
		sm.announce(t)
	}
	return err
}
