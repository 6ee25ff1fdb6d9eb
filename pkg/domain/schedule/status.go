package schedule

import (
	"encoding/json"
	"fmt"
)

// ItemStatus is the lifecycle status of a scheduled work item.
type ItemStatus string

const (
	StatusNotStarted ItemStatus = "not_started"
	StatusInProgress ItemStatus = "in_progress"
	StatusBlocked    ItemStatus = "blocked"
	StatusCompleted  ItemStatus = "completed"
)

// validTransitions defines the allowed status transitions and their events.
// Map: currentStatus -> event -> targetStatus
var validTransitions = map[ItemStatus]map[string]ItemStatus{
	StatusNotStarted: {
		"start": StatusInProgress,
		"block": StatusBlocked,
	},
	StatusInProgress: {
		"complete": StatusCompleted,
		"block":    StatusBlocked,
		"stop":     StatusNotStarted,
	},
	StatusBlocked: {
		"unblock": StatusNotStarted,
	},
	StatusCompleted: {
		"reopen": StatusNotStarted,
	},
}

// AllItemStatuses returns all valid item statuses.
func AllItemStatuses() []ItemStatus {
	return []ItemStatus{
		StatusNotStarted,
		StatusInProgress,
		StatusBlocked,
		StatusCompleted,
	}
}

// IsValid returns true if the status is a recognized item status.
func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s ItemStatus) String() string {
	return string(s)
}

// CanTransitionWith returns true if the given event can trigger a transition from this status.
func (s ItemStatus) CanTransitionWith(event string) bool {
	transitions, ok := validTransitions[s]
	if !ok {
		return false
	}

	_, ok = transitions[event]
	return ok
}

// TransitionWith returns the target status for a given event, or an error if not allowed.
func (s ItemStatus) TransitionWith(event string) (ItemStatus, error) {
	transitions, ok := validTransitions[s]
	if !ok {
		return s, fmt.Errorf("no transitions defined for status: %s", s)
	}

	target, ok := transitions[event]
	if !ok {
		return s, fmt.Errorf("event '%s' not allowed from status '%s'", event, s)
	}

	return target, nil
}

// ValidEvents returns all valid events that can be triggered from this status.
func (s ItemStatus) ValidEvents() []string {
	transitions, ok := validTransitions[s]
	if !ok {
		return nil
	}

	var events []string
	for event := range transitions {
		events = append(events, event)
	}
	return events
}

// IsComplete returns true if the item has been finished.
func (s ItemStatus) IsComplete() bool {
	return s == StatusCompleted
}

// IsInProgress returns true if the item is currently being worked on.
func (s ItemStatus) IsInProgress() bool {
	return s == StatusInProgress
}

// IsBlocked returns true if the item is blocked.
func (s ItemStatus) IsBlocked() bool {
	return s == StatusBlocked
}

// DisplayName returns a human-readable display name for the status.
func (s ItemStatus) DisplayName() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusBlocked:
		return "Blocked"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseItemStatus parses a string into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	status := ItemStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid item status: %s", s)
	}
	return status, nil
}

// MustParseItemStatus parses a string into an ItemStatus, panicking on error.
func MustParseItemStatus(s string) ItemStatus {
	status, err := ParseItemStatus(s)
	if err != nil {
		panic(err)
	}
	return status
}

// MarshalJSON implements json.Marshaler interface.
func (s ItemStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (s *ItemStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	// Accept empty string as not started so older schedule files keep loading
	if str == "" {
		*s = StatusNotStarted
		return nil
	}

	status := ItemStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("invalid item status: %s", str)
	}

	*s = status
	return nil
}
