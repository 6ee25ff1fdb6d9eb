package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"feasly/pkg/domain"
	"feasly/pkg/domain/schedule"
)

// ScheduleService manages the scheduled work items an assessment is
// computed from.
type ScheduleService struct {
	repo  domain.WorkspaceRepository
	clock func() time.Time
}

// NewScheduleService creates a schedule service using the wall clock.
func NewScheduleService(repo domain.WorkspaceRepository) *ScheduleService {
	return &ScheduleService{repo: repo, clock: time.Now}
}

// WithClock replaces the clock used for item creation timestamps.
func (s *ScheduleService) WithClock(clock func() time.Time) *ScheduleService {
	s.clock = clock
	return s
}

// List returns the current schedule.
func (s *ScheduleService) List() (*schedule.Schedule, error) {
	return s.repo.LoadSchedule()
}

// AddItem appends a new not-started work item with a generated ID and
// persists the schedule.
func (s *ScheduleService) AddItem(title string, start, end time.Time) (schedule.WorkItem, error) {
	now := s.clock()
	item, err := schedule.NewWorkItem(uuid.NewString(), title, schedule.StatusNotStarted, start, end, now)
	if err != nil {
		return schedule.WorkItem{}, err
	}

	sched, err := s.repo.LoadSchedule()
	if err != nil {
		return schedule.WorkItem{}, err
	}

	sched.Items = append(sched.Items, item)
	sched.UpdatedAt = now
	if err := s.repo.SaveSchedule(sched); err != nil {
		return schedule.WorkItem{}, err
	}
	return item, nil
}

// RemoveItem deletes an item by ID and persists the schedule.
func (s *ScheduleService) RemoveItem(id string) error {
	sched, err := s.repo.LoadSchedule()
	if err != nil {
		return err
	}

	for i := range sched.Items {
		if sched.Items[i].ID == id {
			sched.Items = append(sched.Items[:i], sched.Items[i+1:]...)
			sched.UpdatedAt = s.clock()
			return s.repo.SaveSchedule(sched)
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
}

// TransitionItem applies a status event (start, block, unblock, stop,
// complete, reopen) to an item through the state machine and persists the
// schedule. The item's new status is returned.
func (s *ScheduleService) TransitionItem(id, event string) (schedule.ItemStatus, error) {
	sched, err := s.repo.LoadSchedule()
	if err != nil {
		return "", err
	}

	item := sched.FindItem(id)
	if item == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	updated, err := item.Transition(event)
	if err != nil {
		return "", err
	}
	*item = updated

	sched.UpdatedAt = s.clock()
	if err := s.repo.SaveSchedule(sched); err != nil {
		return "", err
	}
	return updated.Status, nil
}
