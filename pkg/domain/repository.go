package domain

import (
	"errors"

	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/profile"
	"feasly/pkg/domain/project"
	"feasly/pkg/domain/schedule"
)

// Workspace-level errors shared by the application services.
var (
	// ErrNotInitialized indicates no feasly workspace exists yet.
	ErrNotInitialized = errors.New("workspace not initialized")

	// ErrNoProject indicates no project document exists.
	ErrNoProject = errors.New("no project found")

	// ErrNoProfile indicates no profile document exists.
	ErrNoProfile = errors.New("no profile found")

	// ErrItemNotFound indicates the schedule item does not exist.
	ErrItemNotFound = errors.New("schedule item not found")
)

// WorkspaceRepository handles the persistence of feasly documents in the
// .feasly/ directory. Only inputs are stored; assessments are always
// recomputed from them.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveProfile(p *profile.Profile) error
	LoadProfile() (*profile.Profile, error)
	SaveProject(p *project.Project) error
	LoadProject() (*project.Project, error)
	SaveSchedule(s *schedule.Schedule) error
	LoadSchedule() (*schedule.Schedule, error)
	SaveSettings(cfg feasibility.Config) error
	LoadSettings() (feasibility.Config, error)
}
