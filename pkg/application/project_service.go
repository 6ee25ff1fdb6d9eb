package application

import (
	"feasly/pkg/domain"
	"feasly/pkg/domain/project"
)

// ProjectService manages the candidate project's requirements.
type ProjectService struct {
	repo domain.WorkspaceRepository
}

func NewProjectService(repo domain.WorkspaceRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Get returns the stored project.
func (s *ProjectService) Get() (*project.Project, error) {
	return s.repo.LoadProject()
}

// RequireSkill adds or updates a required skill and persists the project.
func (s *ProjectService) RequireSkill(name string, importance int, learningHours float64) error {
	p, err := s.repo.LoadProject()
	if err != nil {
		return err
	}
	if err := p.RequireSkill(name, importance, learningHours); err != nil {
		return err
	}
	return s.repo.SaveProject(p)
}

// RequireTool adds or updates a required tool and persists the project.
func (s *ProjectService) RequireTool(name, category string, essential bool, estimatedCost float64) error {
	p, err := s.repo.LoadProject()
	if err != nil {
		return err
	}
	if err := p.RequireTool(name, category, essential, estimatedCost); err != nil {
		return err
	}
	return s.repo.SaveProject(p)
}
