package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feasly/pkg/domain"
	"feasly/pkg/domain/schedule"
)

// ExternalIssue is a tracker-agnostic view of an issue fetched by an
// importer backend.
type ExternalIssue struct {
	Key       string
	Title     string
	Closed    bool
	Assigned  bool
	Labels    []string
	CreatedAt time.Time
	ClosedAt  *time.Time
	DueOn     *time.Time
}

// IssueFetcher fetches issues from an external tracker. Network retries
// belong to implementations, not to the engine.
type IssueFetcher interface {
	FetchIssues(ctx context.Context, owner, repo string) ([]ExternalIssue, error)
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Imported int
	Updated  int
}

// ImportService maps externally fetched issues into scheduled work items.
// It is the collaborator that supplies the raw work-item collection; the
// assessment engine itself never fetches anything.
type ImportService struct {
	repo    domain.WorkspaceRepository
	fetcher IssueFetcher
	clock   func() time.Time
}

func NewImportService(repo domain.WorkspaceRepository, fetcher IssueFetcher) *ImportService {
	return &ImportService{repo: repo, fetcher: fetcher, clock: time.Now}
}

// WithClock replaces the clock used for schedule timestamps.
func (s *ImportService) WithClock(clock func() time.Time) *ImportService {
	s.clock = clock
	return s
}

// ImportIssues fetches the issues of the given repository and merges them
// into the schedule. Items are keyed by the issue key, so re-importing
// updates status and dates instead of duplicating.
func (s *ImportService) ImportIssues(ctx context.Context, owner, repo string) (*ImportResult, error) {
	issues, err := s.fetcher.FetchIssues(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issues from %s/%s: %w", owner, repo, err)
	}

	sched, err := s.repo.LoadSchedule()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, issue := range issues {
		item, err := mapIssue(issue)
		if err != nil {
			return nil, err
		}

		if existing := sched.FindItem(item.ID); existing != nil {
			item.CreatedAt = existing.CreatedAt
			*existing = item
			result.Updated++
			continue
		}
		sched.Items = append(sched.Items, item)
		result.Imported++
	}

	sched.UpdatedAt = s.clock()
	if err := s.repo.SaveSchedule(sched); err != nil {
		return nil, err
	}
	return result, nil
}

// mapIssue converts an external issue into a work item. Closed issues are
// completed; a "blocked" label wins over an assignee; an assigned open issue
// is in progress; anything else has not started. The item spans from the
// issue's creation to its due date, falling back to the close date and then
// to the creation date itself.
func mapIssue(issue ExternalIssue) (schedule.WorkItem, error) {
	status := schedule.StatusNotStarted
	switch {
	case issue.Closed:
		status = schedule.StatusCompleted
	case hasLabel(issue.Labels, "blocked"):
		status = schedule.StatusBlocked
	case issue.Assigned:
		status = schedule.StatusInProgress
	}

	end := issue.CreatedAt
	switch {
	case issue.DueOn != nil:
		end = *issue.DueOn
	case issue.ClosedAt != nil:
		end = *issue.ClosedAt
	}
	if end.Before(issue.CreatedAt) {
		end = issue.CreatedAt
	}

	return schedule.NewWorkItem(issue.Key, issue.Title, status, issue.CreatedAt, end, issue.CreatedAt)
}

func hasLabel(labels []string, name string) bool {
	for _, l := range labels {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}
