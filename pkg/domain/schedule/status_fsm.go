package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration.
// These must remain as untyped string constants for statekit.StateID compatibility.
// Values are kept in sync with ItemStatus constants in status.go.
const (
	StateNotStarted = "not_started"
	StateInProgress = "in_progress"
	StateBlocked    = "blocked"
	StateCompleted  = "completed"
)

// init validates at startup that FSM state constants match ItemStatus values.
// This ensures the FSM and value object stay in sync.
func init() {
	stateMap := map[string]ItemStatus{
		StateNotStarted: StatusNotStarted,
		StateInProgress: StatusInProgress,
		StateBlocked:    StatusBlocked,
		StateCompleted:  StatusCompleted,
	}

	for fsmState, itemStatus := range stateMap {
		if fsmState != string(itemStatus) {
			panic(fmt.Sprintf("FSM state %q does not match ItemStatus %q - constants are out of sync", fsmState, itemStatus))
		}
	}
}

// ItemContext carries state data for a single scheduled item.
type ItemContext struct {
	ItemID string
	Guard  func(itemID string, event string) bool
}

// ItemStateMachine enforces the valid status transitions for a work item.
type ItemStateMachine struct {
	interpreter *statekit.Interpreter[ItemContext]
}

func NewItemStateMachine(initialState string, itemID string, guard func(string, string) bool) (*ItemStateMachine, error) {
	if guard == nil {
		guard = func(string, string) bool { return true }
	}

	builder := statekit.NewMachine[ItemContext]("schedule-item").
		WithInitial(statekit.StateID(initialState)).
		WithContext(ItemContext{
			ItemID: itemID,
			Guard:  guard,
		}).
		WithGuard("itemGuard", func(ctx ItemContext, e statekit.Event) bool {
			return ctx.Guard(ctx.ItemID, string(e.Type))
		})

	builder.State(StateNotStarted).
		On("start").Target(StateInProgress).Guard("itemGuard").
		On("block").Target(StateBlocked).
		Done()

	builder.State(StateInProgress).
		On("complete").Target(StateCompleted).
		On("block").Target(StateBlocked).
		On("stop").Target(StateNotStarted).
		Done()

	builder.State(StateBlocked).
		On("unblock").Target(StateNotStarted).
		Done()

	builder.State(StateCompleted).
		On("reopen").Target(StateNotStarted).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &ItemStateMachine{interpreter: interpreter}, nil
}

// Transition attempts to move the item to a new state.
func (sm *ItemStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}

	// In statekit, if no transition matches or a guard fails, the state stays
	// the same, so an unchanged state means the event was rejected.
	return fmt.Errorf("the action '%s' is not allowed while the item is in the '%s' state", event, before)
}

func (sm *ItemStateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentStatus returns the current state as an ItemStatus value object.
func (sm *ItemStateMachine) CurrentStatus() ItemStatus {
	return ItemStatus(sm.Current())
}

// CanTransition checks if the given event is valid for the current state.
// This delegates to the ItemStatus value object for consistency.
func (sm *ItemStateMachine) CanTransition(event string) bool {
	return sm.CurrentStatus().CanTransitionWith(event)
}

// ValidEvents returns the valid events for the current state.
func (sm *ItemStateMachine) ValidEvents() []string {
	return sm.CurrentStatus().ValidEvents()
}

// IsComplete returns true if the item has been finished.
func (sm *ItemStateMachine) IsComplete() bool {
	return sm.CurrentStatus().IsComplete()
}
