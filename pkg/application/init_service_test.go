package application_test

import (
	"testing"

	"feasly/pkg/application"
	"feasly/pkg/domain/feasibility"
)

func TestInitService_InitializeWorkspace(t *testing.T) {
	repo := &MockRepo{}
	svc := application.NewInitService(repo)

	if err := svc.InitializeWorkspace("side-project"); err != nil {
		t.Fatalf("InitializeWorkspace() error: %v", err)
	}

	if !repo.Initialized {
		t.Error("repository was not initialized")
	}
	if repo.Profile == nil {
		t.Error("no empty profile scaffolded")
	}
	if repo.Project == nil || repo.Project.Name != "side-project" {
		t.Errorf("Project = %+v, want a named project", repo.Project)
	}
	if repo.Schedule == nil {
		t.Error("no empty schedule scaffolded")
	}
	if repo.Settings == nil {
		t.Fatal("no default settings scaffolded")
	}
	if repo.Settings.AvailableHoursPerWeek != feasibility.DefaultAvailableHoursPerWeek {
		t.Errorf("AvailableHoursPerWeek = %v, want the default", repo.Settings.AvailableHoursPerWeek)
	}
}

func TestInitService_InitializeWorkspace_AlreadyInitialized(t *testing.T) {
	repo := &MockRepo{Initialized: true}
	svc := application.NewInitService(repo)

	if err := svc.InitializeWorkspace("again"); err == nil {
		t.Error("re-initializing an existing workspace should fail")
	}
}

func TestInitService_InitializeWorkspace_EmptyName(t *testing.T) {
	svc := application.NewInitService(&MockRepo{})

	if err := svc.InitializeWorkspace(""); err == nil {
		t.Error("empty project name should fail")
	}
}
