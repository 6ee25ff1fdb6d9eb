package feasibility

import (
	"math"
	"strings"
)

// ToolCoverageResult is the outcome of matching a person's tools against a
// project's required tools.
type ToolCoverageResult struct {
	// CoveragePercent is the unweighted count ratio of matched tools, 0-100.
	// Unlike skill coverage this is deliberately not importance-weighted:
	// tools are binary have/don't-have.
	CoveragePercent int `json:"coverage_percent" yaml:"coverage_percent"`

	// MatchedTools lists the names of required tools the person has,
	// in required-tool input order.
	MatchedTools []string `json:"matched_tools" yaml:"matched_tools"`

	// MissingTools lists required tools the person lacks,
	// in required-tool input order.
	MissingTools []ToolGap `json:"missing_tools" yaml:"missing_tools"`

	// EssentialMissingCount is the number of missing tools flagged essential.
	EssentialMissingCount int `json:"essential_missing_count" yaml:"essential_missing_count"`

	// EstimatedTotalCost is the summed acquisition cost of all missing tools.
	EstimatedTotalCost float64 `json:"estimated_total_cost" yaml:"estimated_total_cost"`
}

// EvaluateToolCoverage matches the person's tools against the project's
// required tools by name (case-insensitive, exact). Coverage is a flat count
// ratio; every missing tool adds its estimated cost to the total, and missing
// essential tools are counted separately.
func EvaluateToolCoverage(userTools []Tool, requiredTools []RequiredTool) ToolCoverageResult {
	result := ToolCoverageResult{
		MatchedTools: []string{},
		MissingTools: []ToolGap{},
	}

	if len(requiredTools) == 0 {
		result.CoveragePercent = 100
		return result
	}

	have := make(map[string]bool, len(userTools))
	for _, t := range userTools {
		have[strings.ToLower(t.Name)] = true
	}

	matched := 0
	for _, req := range requiredTools {
		if have[strings.ToLower(req.Name)] {
			matched++
			result.MatchedTools = append(result.MatchedTools, req.Name)
			continue
		}

		result.MissingTools = append(result.MissingTools, ToolGap{
			Name:      req.Name,
			Category:  req.Category,
			Cost:      req.EstimatedCost,
			Essential: req.Essential,
		})
		if req.Essential {
			result.EssentialMissingCount++
		}
		result.EstimatedTotalCost += req.EstimatedCost
	}

	result.CoveragePercent = int(math.Round(100 * float64(matched) / float64(len(requiredTools))))
	return result
}
