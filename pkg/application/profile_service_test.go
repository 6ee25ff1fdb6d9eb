package application_test

import (
	"testing"

	"feasly/pkg/application"
	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/profile"
)

func TestProfileService_SetSkill(t *testing.T) {
	repo := &MockRepo{Profile: &profile.Profile{}}
	svc := application.NewProfileService(repo)

	if err := svc.SetSkill("Go", 4); err != nil {
		t.Fatalf("SetSkill() error: %v", err)
	}
	if err := svc.SetSkill("go", 5); err != nil {
		t.Fatalf("SetSkill() update error: %v", err)
	}

	if len(repo.Profile.Skills) != 1 {
		t.Fatalf("Skills = %v, want case-insensitive update, not duplicate", repo.Profile.Skills)
	}
	if repo.Profile.Skills[0].Proficiency != 5 {
		t.Errorf("Proficiency = %d, want 5", repo.Profile.Skills[0].Proficiency)
	}
}

func TestProfileService_SetSkill_RejectsOutOfRange(t *testing.T) {
	svc := application.NewProfileService(&MockRepo{Profile: &profile.Profile{}})

	if err := svc.SetSkill("Go", 6); err == nil {
		t.Error("SetSkill(6) should fail")
	}
}

func TestProfileService_RemoveSkill(t *testing.T) {
	repo := &MockRepo{Profile: &profile.Profile{
		Skills: []feasibility.Skill{{Name: "Go", Proficiency: 3}},
	}}
	svc := application.NewProfileService(repo)

	if err := svc.RemoveSkill("GO"); err != nil {
		t.Fatalf("RemoveSkill() error: %v", err)
	}
	if len(repo.Profile.Skills) != 0 {
		t.Errorf("Skills = %v, want empty", repo.Profile.Skills)
	}

	if err := svc.RemoveSkill("Go"); err == nil {
		t.Error("removing an absent skill should fail")
	}
}

func TestProfileService_Tools(t *testing.T) {
	repo := &MockRepo{Profile: &profile.Profile{}}
	svc := application.NewProfileService(repo)

	if err := svc.AddTool("Docker"); err != nil {
		t.Fatalf("AddTool() error: %v", err)
	}
	if err := svc.AddTool("docker"); err != nil {
		t.Fatalf("AddTool() duplicate error: %v", err)
	}
	if len(repo.Profile.Tools) != 1 {
		t.Errorf("Tools = %v, want duplicate add to be a no-op", repo.Profile.Tools)
	}
	if err := svc.RemoveTool("DOCKER"); err != nil {
		t.Fatalf("RemoveTool() error: %v", err)
	}
	if len(repo.Profile.Tools) != 0 {
		t.Errorf("Tools = %v, want empty", repo.Profile.Tools)
	}
}
