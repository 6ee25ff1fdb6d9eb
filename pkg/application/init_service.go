package application

import (
	"fmt"
	"time"

	"feasly/pkg/domain"
	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/profile"
	"feasly/pkg/domain/project"
	"feasly/pkg/domain/schedule"
)

// InitService scaffolds a new feasly workspace.
type InitService struct {
	repo domain.WorkspaceRepository
}

func NewInitService(repo domain.WorkspaceRepository) *InitService {
	return &InitService{repo: repo}
}

// InitializeWorkspace creates the .feasly directory with an empty profile,
// a named empty project, an empty schedule, and default capacity settings.
func (s *InitService) InitializeWorkspace(projectName string) error {
	if projectName == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if s.repo.IsInitialized() {
		return fmt.Errorf("workspace already initialized")
	}

	if err := s.repo.Initialize(); err != nil {
		return err
	}
	if err := s.repo.SaveProfile(&profile.Profile{}); err != nil {
		return err
	}
	if err := s.repo.SaveProject(&project.Project{Name: projectName}); err != nil {
		return err
	}
	if err := s.repo.SaveSchedule(&schedule.Schedule{UpdatedAt: time.Now()}); err != nil {
		return err
	}
	return s.repo.SaveSettings(feasibility.DefaultConfig(time.Time{}))
}
