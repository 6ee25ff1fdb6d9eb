package feasibility

import (
	"reflect"
	"testing"
)

func TestEvaluateToolCoverage_FullMatch(t *testing.T) {
	required := []RequiredTool{{Name: "Docker"}, {Name: "Postgres"}}
	user := []Tool{{Name: "docker"}, {Name: "Postgres"}}

	result := EvaluateToolCoverage(user, required)

	if result.CoveragePercent != 100 {
		t.Errorf("CoveragePercent = %d, want 100", result.CoveragePercent)
	}
	if len(result.MissingTools) != 0 {
		t.Errorf("MissingTools = %v, want empty", result.MissingTools)
	}
}

func TestEvaluateToolCoverage_FlatCountRatio(t *testing.T) {
	// Coverage ignores essential flags and cost; it is a plain count ratio.
	required := []RequiredTool{
		{Name: "Laptop", Essential: true},
		{Name: "IDE", EstimatedCost: 99},
		{Name: "GPU", Essential: true, EstimatedCost: 1500},
	}
	user := []Tool{{Name: "Laptop"}}

	result := EvaluateToolCoverage(user, required)

	if result.CoveragePercent != 33 {
		t.Errorf("CoveragePercent = %d, want 33", result.CoveragePercent)
	}
	if result.EssentialMissingCount != 1 {
		t.Errorf("EssentialMissingCount = %d, want 1", result.EssentialMissingCount)
	}
	if result.EstimatedTotalCost != 1599 {
		t.Errorf("EstimatedTotalCost = %v, want 1599", result.EstimatedTotalCost)
	}
}

func TestEvaluateToolCoverage_MissingToolDetail(t *testing.T) {
	required := []RequiredTool{{Name: "Oscilloscope", Category: "hardware", Essential: true, EstimatedCost: 400}}

	result := EvaluateToolCoverage(nil, required)

	if len(result.MissingTools) != 1 {
		t.Fatalf("MissingTools = %v, want 1 entry", result.MissingTools)
	}
	gap := result.MissingTools[0]
	if gap.Name != "Oscilloscope" || gap.Category != "hardware" || !gap.Essential || gap.Cost != 400 {
		t.Errorf("gap = %+v, want the required tool's fields carried over", gap)
	}
}

func TestEvaluateToolCoverage_EmptyRequirements(t *testing.T) {
	result := EvaluateToolCoverage([]Tool{{Name: "Hammer"}}, nil)

	if result.CoveragePercent != 100 {
		t.Errorf("CoveragePercent = %d, want 100 for no requirements", result.CoveragePercent)
	}
	if result.MatchedTools == nil || result.MissingTools == nil {
		t.Error("result slices should be empty, not nil")
	}
}

func TestEvaluateToolCoverage_Idempotent(t *testing.T) {
	required := []RequiredTool{{Name: "Docker", Essential: true}, {Name: "k6", EstimatedCost: 50}}
	user := []Tool{{Name: "Docker"}}

	first := EvaluateToolCoverage(user, required)
	second := EvaluateToolCoverage(user, required)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}
