// Package storage persists feasly workspace documents on the local
// filesystem. Only assessment inputs are stored; assessment results are
// recomputed on every run and never written to disk.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"

	"feasly/pkg/domain"
	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/profile"
	"feasly/pkg/domain/project"
	"feasly/pkg/domain/schedule"
)

const FeaslyDir = ".feasly"
const ProfileFile = "profile.yaml"
const ProjectFile = "project.yaml"
const ScheduleFile = "schedule.yaml"
const SettingsFile = "settings.yaml"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .feasly directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, FeaslyDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, FeaslyDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .feasly directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, FeaslyDir))
	return err == nil
}

func (r *FilesystemRepository) SaveProfile(p *profile.Profile) error {
	return r.saveYAML(ProfileFile, p, "profile")
}

func (r *FilesystemRepository) LoadProfile() (*profile.Profile, error) {
	retryer := retry.New[*profile.Profile](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*profile.Profile, error) {
		var p profile.Profile
		if err := r.loadYAML(ProfileFile, &p, "profile"); err != nil {
			if os.IsNotExist(err) {
				return nil, domain.ErrNoProfile
			}
			return nil, err
		}
		return &p, nil
	})
}

func (r *FilesystemRepository) SaveProject(p *project.Project) error {
	return r.saveYAML(ProjectFile, p, "project")
}

func (r *FilesystemRepository) LoadProject() (*project.Project, error) {
	retryer := retry.New[*project.Project](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*project.Project, error) {
		var p project.Project
		if err := r.loadYAML(ProjectFile, &p, "project"); err != nil {
			if os.IsNotExist(err) {
				return nil, domain.ErrNoProject
			}
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return &p, nil
	})
}

func (r *FilesystemRepository) SaveSchedule(s *schedule.Schedule) error {
	return r.saveYAML(ScheduleFile, s, "schedule")
}

func (r *FilesystemRepository) LoadSchedule() (*schedule.Schedule, error) {
	retryer := retry.New[*schedule.Schedule](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*schedule.Schedule, error) {
		var s schedule.Schedule
		if err := r.loadYAML(ScheduleFile, &s, "schedule"); err != nil {
			if os.IsNotExist(err) {
				// A workspace without a schedule is valid; the assessment
				// treats it as an empty item list.
				return &schedule.Schedule{}, nil
			}
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return &s, nil
	})
}

// SaveSettings saves the capacity settings to .feasly/settings.yaml.
// The injected clock is never persisted.
func (r *FilesystemRepository) SaveSettings(cfg feasibility.Config) error {
	return r.saveYAML(SettingsFile, cfg, "settings")
}

// LoadSettings loads the capacity settings, falling back to the documented
// defaults when no settings file exists.
func (r *FilesystemRepository) LoadSettings() (feasibility.Config, error) {
	var cfg feasibility.Config
	if err := r.loadYAML(SettingsFile, &cfg, "settings"); err != nil {
		if os.IsNotExist(err) {
			return feasibility.DefaultConfig(time.Time{}), nil
		}
		return feasibility.Config{}, err
	}
	return cfg, nil
}

func (r *FilesystemRepository) saveYAML(filename string, v any, label string) error {
	path, err := r.ResolvePath(filename)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", label, err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) loadYAML(filename string, v any, label string) error {
	path, err := r.ResolvePath(filename)
	if err != nil {
		return err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", label, err)
	}

	return nil
}
