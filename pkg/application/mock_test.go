package application_test

import (
	"time"

	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/profile"
	"feasly/pkg/domain/project"
	"feasly/pkg/domain/schedule"
)

type MockRepo struct {
	Profile     *profile.Profile
	Project     *project.Project
	Schedule    *schedule.Schedule
	Settings    *feasibility.Config
	Initialized bool
	SaveError   error
	LoadError   error
}

func (m *MockRepo) Initialize() error   { m.Initialized = true; return nil }
func (m *MockRepo) IsInitialized() bool { return m.Initialized }

func (m *MockRepo) SaveProfile(p *profile.Profile) error { m.Profile = p; return m.SaveError }
func (m *MockRepo) LoadProfile() (*profile.Profile, error) {
	if m.Profile == nil {
		return &profile.Profile{}, m.LoadError
	}
	return m.Profile, m.LoadError
}

func (m *MockRepo) SaveProject(p *project.Project) error { m.Project = p; return m.SaveError }
func (m *MockRepo) LoadProject() (*project.Project, error) {
	if m.Project == nil {
		return &project.Project{}, m.LoadError
	}
	return m.Project, m.LoadError
}

func (m *MockRepo) SaveSchedule(s *schedule.Schedule) error { m.Schedule = s; return m.SaveError }
func (m *MockRepo) LoadSchedule() (*schedule.Schedule, error) {
	if m.Schedule == nil {
		return &schedule.Schedule{}, m.LoadError
	}
	return m.Schedule, m.LoadError
}

func (m *MockRepo) SaveSettings(cfg feasibility.Config) error { m.Settings = &cfg; return m.SaveError }
func (m *MockRepo) LoadSettings() (feasibility.Config, error) {
	if m.Settings == nil {
		return feasibility.DefaultConfig(time.Time{}), m.LoadError
	}
	return *m.Settings, m.LoadError
}
