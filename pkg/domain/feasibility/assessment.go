package feasibility

import (
	"fmt"
	"math"

	"feasly/pkg/domain/schedule"
)

// FeasibilityStatus buckets the composite score.
type FeasibilityStatus string

const (
	StatusGreen  FeasibilityStatus = "green"
	StatusYellow FeasibilityStatus = "yellow"
	StatusRed    FeasibilityStatus = "red"
)

// IsValid returns true if the status is a recognized feasibility status.
func (s FeasibilityStatus) IsValid() bool {
	switch s {
	case StatusGreen, StatusYellow, StatusRed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s FeasibilityStatus) String() string {
	return string(s)
}

// Component weights of the composite score.
const (
	skillWeight = 0.35
	toolWeight  = 0.25
	timeWeight  = 0.20
	riskWeight  = 0.20
)

// Status bucket thresholds.
const (
	greenThreshold  = 70
	yellowThreshold = 40
)

// Recommendation limits.
const topGapCount = 3

// FeasibilityAssessment is the terminal output of the pipeline: the
// composite score, its status bucket, ranked recommendations, and the four
// component results they were derived from.
type FeasibilityAssessment struct {
	FeasibilityScore  int               `json:"feasibility_score" yaml:"feasibility_score"`
	FeasibilityStatus FeasibilityStatus `json:"feasibility_status" yaml:"feasibility_status"`
	Recommendations   []string          `json:"recommendations" yaml:"recommendations"`

	SkillCoverage   SkillCoverageResult   `json:"skill_coverage" yaml:"skill_coverage"`
	ToolCoverage    ToolCoverageResult    `json:"tool_coverage" yaml:"tool_coverage"`
	TimeFeasibility TimeFeasibilityResult `json:"time_feasibility" yaml:"time_feasibility"`
	RiskAnalysis    RiskAnalysisResult    `json:"risk_analysis" yaml:"risk_analysis"`
}

// TimeFeasibilityScore converts the weekly deficit into a 0-100 component
// score: full marks when there is no deficit, otherwise reduced in proportion
// to the deficit's share of the available hours.
func TimeFeasibilityScore(tf TimeFeasibilityResult) float64 {
	if tf.DeficitOrSurplus >= 0 {
		return 100
	}
	if tf.WeeklyHoursAvailable <= 0 {
		return 0
	}
	score := 100 - (-tf.DeficitOrSurplus/tf.WeeklyHoursAvailable)*100
	return math.Max(0, score)
}

// RiskPenaltyScore inverts the overwhelm index into a 0-100 component score.
func RiskPenaltyScore(risk RiskAnalysisResult) float64 {
	return math.Max(0, float64(100-risk.OverwhelmIndex))
}

// Aggregate combines the four component results into the final assessment:
// a weighted 0-100 score, its green/yellow/red bucket, and recommendations
// appended in a fixed order.
func Aggregate(skills SkillCoverageResult, tools ToolCoverageResult, tf TimeFeasibilityResult, risk RiskAnalysisResult) FeasibilityAssessment {
	timeScore := TimeFeasibilityScore(tf)
	riskScore := RiskPenaltyScore(risk)

	score := int(math.Round(
		float64(skills.CoveragePercent)*skillWeight +
			float64(tools.CoveragePercent)*toolWeight +
			timeScore*timeWeight +
			riskScore*riskWeight))

	status := StatusRed
	switch {
	case score >= greenThreshold:
		status = StatusGreen
	case score >= yellowThreshold:
		status = StatusYellow
	}

	return FeasibilityAssessment{
		FeasibilityScore:  score,
		FeasibilityStatus: status,
		Recommendations:   buildRecommendations(skills, tools, tf, risk),
		SkillCoverage:     skills,
		ToolCoverage:      tools,
		TimeFeasibility:   tf,
		RiskAnalysis:      risk,
	}
}

// buildRecommendations appends recommendations in the fixed priority order:
// timeline, skills, essential tools, budget, risk review, blockers.
func buildRecommendations(skills SkillCoverageResult, tools ToolCoverageResult, tf TimeFeasibilityResult, risk RiskAnalysisResult) []string {
	recs := []string{}

	if tf.RecommendedTimelineExtensionWeeks > 0 {
		recs = append(recs, fmt.Sprintf("Extend the timeline by %d week(s) to fit your available hours.",
			tf.RecommendedTimelineExtensionWeeks))
	}

	if skills.CoveragePercent < greenThreshold {
		for _, gap := range skills.TopGaps(topGapCount) {
			recs = append(recs, fmt.Sprintf("Learn %s (importance %d/5, ~%.0fh to pick up).",
				gap.Name, gap.Importance, gap.LearningHours))
		}
	}

	if tools.EssentialMissingCount > 0 {
		recs = append(recs, fmt.Sprintf("Acquire %d essential tool(s) before starting.",
			tools.EssentialMissingCount))
	}

	if tools.EstimatedTotalCost > 0 {
		recs = append(recs, fmt.Sprintf("Budget $%.2f for missing tools.",
			tools.EstimatedTotalCost))
	}

	if risk.RiskLevel == RiskHigh {
		recs = append(recs, "Risk is high - review the warnings and consider reducing scope.")
	}

	if risk.BlockersCount > 0 {
		recs = append(recs, fmt.Sprintf("Resolve %d blocked item(s) to unblock progress.",
			risk.BlockersCount))
	}

	return recs
}

// Assess runs the full pipeline: the two coverage evaluators and the time
// estimator independently, the risk analyzer over their outputs, and the
// aggregator over all four. It validates the configuration and the work item
// dates before computing and surfaces any violation to the caller unchanged.
func Assess(userSkills []Skill, requiredSkills []RequiredSkill, userTools []Tool, requiredTools []RequiredTool, items []schedule.WorkItem, cfg Config) (*FeasibilityAssessment, error) {
	tf, err := EstimateTimeFeasibility(items, cfg)
	if err != nil {
		return nil, err
	}

	skills := EvaluateSkillCoverage(userSkills, requiredSkills)
	tools := EvaluateToolCoverage(userTools, requiredTools)
	risk := AnalyzeRisk(items, skills, tools, cfg.Now)

	assessment := Aggregate(skills, tools, tf, risk)
	return &assessment, nil
}
