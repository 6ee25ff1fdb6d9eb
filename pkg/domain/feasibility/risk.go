package feasibility

import (
	"fmt"
	"time"

	"feasly/pkg/domain/schedule"
)

// RiskLevel buckets the overwhelm index.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IsValid returns true if the level is a recognized risk level.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level.
func (l RiskLevel) String() string {
	return string(l)
}

// Heuristic weights and thresholds for the overwhelm index.
const (
	maxInProgressItems   = 5
	tooManyInProgressAdd = 20
	perBlockerAdd        = 10
	perStaleBlockerAdd   = 15
	perCriticalSkillAdd  = 15
	perEssentialToolAdd  = 10
	largeWorkloadItems   = 20
	largeWorkloadAdd     = 10

	staleBlockerAge = 48 * time.Hour

	mediumRiskThreshold = 30
	highRiskThreshold   = 60
)

// RiskAnalysisResult captures the heuristic risk picture of the current
// project state.
type RiskAnalysisResult struct {
	// OverwhelmIndex is the accumulated risk heuristic, clamped to 0-100.
	OverwhelmIndex int `json:"overwhelm_index" yaml:"overwhelm_index"`

	// BlockersCount is the number of blocked work items.
	BlockersCount int `json:"blockers_count" yaml:"blockers_count"`

	// ComplexityScore is informational: skill gaps weigh double, missing
	// tools single. It is computed and exposed but does not feed the
	// feasibility score (see DESIGN.md); it is not clamped.
	ComplexityScore int `json:"complexity_score" yaml:"complexity_score"`

	// RiskLevel buckets the overwhelm index: <30 low, <60 medium, else high.
	RiskLevel RiskLevel `json:"risk_level" yaml:"risk_level"`

	// Warnings are human-readable explanations of each contribution, in the
	// fixed accumulation order.
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// AnalyzeRisk inspects the work item status distribution and the two
// coverage results and accumulates an overwhelm index. The now parameter is
// the injected reference time for the stale-blocker check; the analyzer never
// reads the system clock.
func AnalyzeRisk(items []schedule.WorkItem, skills SkillCoverageResult, tools ToolCoverageResult, now time.Time) RiskAnalysisResult {
	result := RiskAnalysisResult{
		Warnings: []string{},
	}

	index := 0

	inProgress := 0
	staleBlockers := 0
	for _, item := range items {
		switch {
		case item.Status.IsInProgress():
			inProgress++
		case item.Status.IsBlocked():
			result.BlockersCount++
			if now.Sub(item.CreatedAt) > staleBlockerAge {
				staleBlockers++
			}
		}
	}

	if inProgress > maxInProgressItems {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("too many tasks in progress (%d) - focus on finishing before starting more", inProgress))
		index += tooManyInProgressAdd
	}

	if result.BlockersCount > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d item(s) are blocked", result.BlockersCount))
		index += result.BlockersCount * perBlockerAdd

		if staleBlockers > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%d blocker(s) have been unresolved for more than 48 hours", staleBlockers))
			index += staleBlockers * perStaleBlockerAdd
		}
	}

	criticalMissing := 0
	for _, req := range skills.MissingSkills {
		if req.IsCritical() {
			criticalMissing++
		}
	}
	if criticalMissing > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d critical skill(s) are missing", criticalMissing))
		index += criticalMissing * perCriticalSkillAdd
	}

	if tools.EssentialMissingCount > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d essential tool(s) are unavailable", tools.EssentialMissingCount))
		index += tools.EssentialMissingCount * perEssentialToolAdd
	}

	if len(items) > largeWorkloadItems {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("large workload: %d scheduled items", len(items)))
		index += largeWorkloadAdd
	}

	if index > 100 {
		index = 100
	}
	result.OverwhelmIndex = index

	result.ComplexityScore = len(skills.Gaps)*2 + len(tools.MissingTools)

	switch {
	case index < mediumRiskThreshold:
		result.RiskLevel = RiskLow
	case index < highRiskThreshold:
		result.RiskLevel = RiskMedium
	default:
		result.RiskLevel = RiskHigh
	}

	return result
}
