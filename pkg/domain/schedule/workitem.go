// Package schedule provides the scheduled work items a feasibility
// assessment is computed from, together with their status lifecycle.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrEndBeforeStart indicates a work item whose end date precedes its start date.
var ErrEndBeforeStart = errors.New("end date is before start date")

// WorkItem is a single dated unit of scheduled work.
type WorkItem struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Status    ItemStatus `json:"status" yaml:"status"`
	StartDate time.Time  `json:"start_date" yaml:"start_date"`
	EndDate   time.Time  `json:"end_date" yaml:"end_date"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
}

// NewWorkItem constructs a validated work item. The end date must not precede
// the start date and the status must be a recognized value.
func NewWorkItem(id, title string, status ItemStatus, start, end, createdAt time.Time) (WorkItem, error) {
	if id == "" {
		return WorkItem{}, fmt.Errorf("work item id cannot be empty")
	}
	if !status.IsValid() {
		return WorkItem{}, fmt.Errorf("invalid item status: %s", status)
	}
	if end.Before(start) {
		return WorkItem{}, fmt.Errorf("work item %s: %w", id, ErrEndBeforeStart)
	}

	return WorkItem{
		ID:        id,
		Title:     title,
		Status:    status,
		StartDate: start,
		EndDate:   end,
		CreatedAt: createdAt,
	}, nil
}

// Validate checks the date precondition on an already constructed item.
func (w WorkItem) Validate() error {
	if w.EndDate.Before(w.StartDate) {
		return fmt.Errorf("work item %s: %w", w.ID, ErrEndBeforeStart)
	}
	return nil
}

// Days returns the calendar-day span of the item, with a floor of one day
// even for zero-length spans.
func (w WorkItem) Days() int {
	days := int(math.Ceil(w.EndDate.Sub(w.StartDate).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Transition applies a status event to the item through the state machine
// and returns the updated item.
func (w WorkItem) Transition(event string) (WorkItem, error) {
	sm, err := NewItemStateMachine(string(w.Status), w.ID, nil)
	if err != nil {
		return w, err
	}
	if err := sm.Transition(event); err != nil {
		return w, err
	}
	w.Status = sm.CurrentStatus()
	return w, nil
}

// Schedule is the ordered collection of work items stored in a workspace.
type Schedule struct {
	Items     []WorkItem `json:"items" yaml:"items"`
	UpdatedAt time.Time  `json:"updated_at" yaml:"updated_at"`
}

// Validate checks the date precondition on every item.
func (s *Schedule) Validate() error {
	for _, item := range s.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FindItem returns the item with the given ID, or nil if not found.
func (s *Schedule) FindItem(id string) *WorkItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// CountByStatus returns the number of items per status.
func (s *Schedule) CountByStatus() map[ItemStatus]int {
	counts := make(map[ItemStatus]int)
	for _, item := range s.Items {
		counts[item.Status]++
	}
	return counts
}
