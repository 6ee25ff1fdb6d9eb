package storage_test

import (
	"errors"
	"testing"
	"time"

	"feasly/pkg/domain"
	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/profile"
	"feasly/pkg/domain/project"
	"feasly/pkg/domain/schedule"
	"feasly/pkg/storage"
)

func newTestRepo(t *testing.T) *storage.FilesystemRepository {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	return repo
}

func TestFilesystemRepository_Initialize(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())

	if repo.IsInitialized() {
		t.Error("IsInitialized() = true before Initialize()")
	}
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if !repo.IsInitialized() {
		t.Error("IsInitialized() = false after Initialize()")
	}
}

func TestFilesystemRepository_ProfileRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	prof := &profile.Profile{
		Name:   "me",
		Skills: []feasibility.Skill{{Name: "Go", Proficiency: 4}},
		Tools:  []feasibility.Tool{{Name: "Docker"}},
	}

	if err := repo.SaveProfile(prof); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	loaded, err := repo.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}
	if loaded.Name != "me" || len(loaded.Skills) != 1 || len(loaded.Tools) != 1 {
		t.Errorf("loaded profile = %+v", loaded)
	}
	if loaded.Skills[0].Proficiency != 4 {
		t.Errorf("Proficiency = %d, want 4", loaded.Skills[0].Proficiency)
	}
}

func TestFilesystemRepository_LoadProfile_Missing(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.LoadProfile(); !errors.Is(err, domain.ErrNoProfile) {
		t.Errorf("LoadProfile() = %v, want ErrNoProfile", err)
	}
}

func TestFilesystemRepository_ProjectRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	proj := &project.Project{
		Name:           "side-project",
		RequiredSkills: []feasibility.RequiredSkill{{Name: "SQL", Importance: 4, LearningHours: 20}},
		RequiredTools:  []feasibility.RequiredTool{{Name: "GPU", Category: "hardware", Essential: true, EstimatedCost: 1500}},
	}

	if err := repo.SaveProject(proj); err != nil {
		t.Fatalf("SaveProject() error: %v", err)
	}

	loaded, err := repo.LoadProject()
	if err != nil {
		t.Fatalf("LoadProject() error: %v", err)
	}
	if loaded.Name != "side-project" {
		t.Errorf("Name = %s, want side-project", loaded.Name)
	}
	tool := loaded.RequiredTools[0]
	if !tool.Essential || tool.EstimatedCost != 1500 {
		t.Errorf("RequiredTool = %+v", tool)
	}
}

func TestFilesystemRepository_LoadProject_Missing(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.LoadProject(); !errors.Is(err, domain.ErrNoProject) {
		t.Errorf("LoadProject() = %v, want ErrNoProject", err)
	}
}

func TestFilesystemRepository_LoadProject_RejectsOutOfRangeValues(t *testing.T) {
	repo := newTestRepo(t)
	// Bypass the constructors the way a hand-edited YAML file would.
	proj := &project.Project{
		Name:           "broken",
		RequiredSkills: []feasibility.RequiredSkill{{Name: "SQL", Importance: 9}},
	}
	if err := repo.SaveProject(proj); err != nil {
		t.Fatalf("SaveProject() error: %v", err)
	}

	if _, err := repo.LoadProject(); err == nil {
		t.Error("LoadProject() should reject importance outside 0-5")
	}
}

func TestFilesystemRepository_ScheduleRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	sched := &schedule.Schedule{
		Items: []schedule.WorkItem{{
			ID:        "a",
			Title:     "build",
			Status:    schedule.StatusInProgress,
			StartDate: now,
			EndDate:   now.AddDate(0, 0, 3),
			CreatedAt: now,
		}},
		UpdatedAt: now,
	}

	if err := repo.SaveSchedule(sched); err != nil {
		t.Fatalf("SaveSchedule() error: %v", err)
	}

	loaded, err := repo.LoadSchedule()
	if err != nil {
		t.Fatalf("LoadSchedule() error: %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("Items = %v, want 1", loaded.Items)
	}
	item := loaded.Items[0]
	if item.Status != schedule.StatusInProgress {
		t.Errorf("Status = %s, want in_progress", item.Status)
	}
	if !item.EndDate.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("EndDate = %v", item.EndDate)
	}
}

func TestFilesystemRepository_LoadSchedule_MissingIsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	sched, err := repo.LoadSchedule()
	if err != nil {
		t.Fatalf("LoadSchedule() error: %v", err)
	}
	if len(sched.Items) != 0 {
		t.Errorf("Items = %v, want empty for a missing file", sched.Items)
	}
}

func TestFilesystemRepository_LoadSchedule_RejectsBackwardsDates(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	sched := &schedule.Schedule{
		Items: []schedule.WorkItem{{
			ID:        "bad",
			Status:    schedule.StatusNotStarted,
			StartDate: now,
			EndDate:   now.AddDate(0, 0, -1),
		}},
	}
	if err := repo.SaveSchedule(sched); err != nil {
		t.Fatalf("SaveSchedule() error: %v", err)
	}

	if _, err := repo.LoadSchedule(); !errors.Is(err, schedule.ErrEndBeforeStart) {
		t.Errorf("LoadSchedule() = %v, want ErrEndBeforeStart", err)
	}
}

func TestFilesystemRepository_SettingsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	cfg := feasibility.Config{AvailableHoursPerWeek: 15, HoursPerDay: 3, Now: time.Now()}

	if err := repo.SaveSettings(cfg); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	loaded, err := repo.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if loaded.AvailableHoursPerWeek != 15 || loaded.HoursPerDay != 3 {
		t.Errorf("loaded settings = %+v", loaded)
	}
	if !loaded.Now.IsZero() {
		t.Error("the clock must not be persisted")
	}
}

func TestFilesystemRepository_LoadSettings_MissingUsesDefaults(t *testing.T) {
	repo := newTestRepo(t)

	cfg, err := repo.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if cfg.AvailableHoursPerWeek != feasibility.DefaultAvailableHoursPerWeek {
		t.Errorf("AvailableHoursPerWeek = %v, want the default", cfg.AvailableHoursPerWeek)
	}
	if cfg.HoursPerDay != feasibility.DefaultHoursPerDay {
		t.Errorf("HoursPerDay = %v, want the default", cfg.HoursPerDay)
	}
}

func TestFilesystemRepository_ResolvePath(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"valid", "profile.yaml", false},
		{"empty", "", true},
		{"traversal", "../outside.yaml", true},
		{"nested", "sub/file.yaml", true},
		{"absolute escape", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.ResolvePath(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}
