package application

import (
	"feasly/pkg/domain"
	"feasly/pkg/domain/profile"
)

// ProfileService manages the person's skill and tool inventory.
type ProfileService struct {
	repo domain.WorkspaceRepository
}

func NewProfileService(repo domain.WorkspaceRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the stored profile.
func (s *ProfileService) Get() (*profile.Profile, error) {
	return s.repo.LoadProfile()
}

// SetSkill adds or updates a skill and persists the profile.
func (s *ProfileService) SetSkill(name string, proficiency int) error {
	p, err := s.repo.LoadProfile()
	if err != nil {
		return err
	}
	if err := p.SetSkill(name, proficiency); err != nil {
		return err
	}
	return s.repo.SaveProfile(p)
}

// RemoveSkill removes a skill and persists the profile.
func (s *ProfileService) RemoveSkill(name string) error {
	p, err := s.repo.LoadProfile()
	if err != nil {
		return err
	}
	if err := p.RemoveSkill(name); err != nil {
		return err
	}
	return s.repo.SaveProfile(p)
}

// AddTool adds a tool and persists the profile.
func (s *ProfileService) AddTool(name string) error {
	p, err := s.repo.LoadProfile()
	if err != nil {
		return err
	}
	if err := p.AddTool(name); err != nil {
		return err
	}
	return s.repo.SaveProfile(p)
}

// RemoveTool removes a tool and persists the profile.
func (s *ProfileService) RemoveTool(name string) error {
	p, err := s.repo.LoadProfile()
	if err != nil {
		return err
	}
	if err := p.RemoveTool(name); err != nil {
		return err
	}
	return s.repo.SaveProfile(p)
}
