// Package application wires the workspace repository to the feasibility
// domain. Services here load input documents, apply configuration, and run
// the pure evaluators; they own all I/O the engine itself refuses to do.
package application

import (
	"time"

	"feasly/pkg/domain"
	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/schedule"
)

// AssessOptions carries per-invocation overrides of the stored capacity
// settings. Zero values mean "use the stored setting".
type AssessOptions struct {
	AvailableHoursPerWeek float64
	HoursPerDay           float64
}

// AssessService runs the feasibility pipeline over the workspace documents.
type AssessService struct {
	repo  domain.WorkspaceRepository
	clock func() time.Time
}

// NewAssessService creates an assess service using the wall clock.
func NewAssessService(repo domain.WorkspaceRepository) *AssessService {
	return &AssessService{repo: repo, clock: time.Now}
}

// WithClock replaces the reference clock. Used by tests to make the
// stale-blocker check deterministic.
func (s *AssessService) WithClock(clock func() time.Time) *AssessService {
	s.clock = clock
	return s
}

// Config resolves the effective assessment configuration: stored settings,
// overridden by any non-zero option, stamped with the current clock.
func (s *AssessService) Config(opts AssessOptions) (feasibility.Config, error) {
	cfg, err := s.repo.LoadSettings()
	if err != nil {
		return feasibility.Config{}, err
	}
	if opts.AvailableHoursPerWeek > 0 {
		cfg.AvailableHoursPerWeek = opts.AvailableHoursPerWeek
	}
	if opts.HoursPerDay > 0 {
		cfg.HoursPerDay = opts.HoursPerDay
	}
	cfg.Now = s.clock()
	return cfg, cfg.Validate()
}

// Assess loads the profile, project, and schedule and runs the full
// pipeline.
func (s *AssessService) Assess(opts AssessOptions) (*feasibility.FeasibilityAssessment, error) {
	cfg, err := s.Config(opts)
	if err != nil {
		return nil, err
	}

	prof, err := s.repo.LoadProfile()
	if err != nil {
		return nil, err
	}
	proj, err := s.repo.LoadProject()
	if err != nil {
		return nil, err
	}
	sched, err := s.repo.LoadSchedule()
	if err != nil {
		return nil, err
	}

	return feasibility.Assess(prof.Skills, proj.RequiredSkills, prof.Tools, proj.RequiredTools, sched.Items, cfg)
}

// SkillCoverage runs only the skill evaluator, for callers that need a
// partial result without the full pipeline.
func (s *AssessService) SkillCoverage() (feasibility.SkillCoverageResult, error) {
	prof, err := s.repo.LoadProfile()
	if err != nil {
		return feasibility.SkillCoverageResult{}, err
	}
	proj, err := s.repo.LoadProject()
	if err != nil {
		return feasibility.SkillCoverageResult{}, err
	}
	return feasibility.EvaluateSkillCoverage(prof.Skills, proj.RequiredSkills), nil
}

// ToolCoverage runs only the tool evaluator.
func (s *AssessService) ToolCoverage() (feasibility.ToolCoverageResult, error) {
	prof, err := s.repo.LoadProfile()
	if err != nil {
		return feasibility.ToolCoverageResult{}, err
	}
	proj, err := s.repo.LoadProject()
	if err != nil {
		return feasibility.ToolCoverageResult{}, err
	}
	return feasibility.EvaluateToolCoverage(prof.Tools, proj.RequiredTools), nil
}

// TimeFeasibility runs only the time estimator.
func (s *AssessService) TimeFeasibility(opts AssessOptions) (feasibility.TimeFeasibilityResult, error) {
	cfg, err := s.Config(opts)
	if err != nil {
		return feasibility.TimeFeasibilityResult{}, err
	}
	sched, err := s.repo.LoadSchedule()
	if err != nil {
		return feasibility.TimeFeasibilityResult{}, err
	}
	return feasibility.EstimateTimeFeasibility(sched.Items, cfg)
}

// Risk runs the risk analyzer over fresh coverage results and the schedule.
func (s *AssessService) Risk() (feasibility.RiskAnalysisResult, error) {
	skills, err := s.SkillCoverage()
	if err != nil {
		return feasibility.RiskAnalysisResult{}, err
	}
	tools, err := s.ToolCoverage()
	if err != nil {
		return feasibility.RiskAnalysisResult{}, err
	}
	sched, err := s.repo.LoadSchedule()
	if err != nil {
		return feasibility.RiskAnalysisResult{}, err
	}
	return feasibility.AnalyzeRisk(sched.Items, skills, tools, s.clock()), nil
}

// AssessCollections runs the pipeline over caller-supplied collections,
// bypassing the workspace. Used for one-shot document assessment.
func (s *AssessService) AssessCollections(
	userSkills []feasibility.Skill,
	requiredSkills []feasibility.RequiredSkill,
	userTools []feasibility.Tool,
	requiredTools []feasibility.RequiredTool,
	items []schedule.WorkItem,
	cfg feasibility.Config,
) (*feasibility.FeasibilityAssessment, error) {
	if cfg.Now.IsZero() {
		cfg.Now = s.clock()
	}
	return feasibility.Assess(userSkills, requiredSkills, userTools, requiredTools, items, cfg)
}
