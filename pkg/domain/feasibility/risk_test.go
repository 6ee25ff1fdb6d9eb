package feasibility

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"feasly/pkg/domain/schedule"
)

func itemWithStatus(id string, status schedule.ItemStatus, createdAt time.Time) schedule.WorkItem {
	return schedule.WorkItem{
		ID:        id,
		Title:     id,
		Status:    status,
		StartDate: createdAt,
		EndDate:   createdAt.AddDate(0, 0, 1),
		CreatedAt: createdAt,
	}
}

func TestAnalyzeRisk_NoSignals(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	result := AnalyzeRisk(nil, SkillCoverageResult{}, ToolCoverageResult{}, now)

	if result.OverwhelmIndex != 0 {
		t.Errorf("OverwhelmIndex = %d, want 0", result.OverwhelmIndex)
	}
	if result.RiskLevel != RiskLow {
		t.Errorf("RiskLevel = %s, want low", result.RiskLevel)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want empty", result.Warnings)
	}
}

func TestAnalyzeRisk_TooManyInProgress(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	items := make([]schedule.WorkItem, 0, 6)
	for i := 0; i < 6; i++ {
		items = append(items, itemWithStatus(string(rune('a'+i)), schedule.StatusInProgress, now))
	}

	result := AnalyzeRisk(items, SkillCoverageResult{}, ToolCoverageResult{}, now)

	if result.OverwhelmIndex != 20 {
		t.Errorf("OverwhelmIndex = %d, want 20", result.OverwhelmIndex)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "too many tasks in progress") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want one mentioning too many tasks in progress", result.Warnings)
	}
}

func TestAnalyzeRisk_FiveInProgressIsFine(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	items := make([]schedule.WorkItem, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, itemWithStatus(string(rune('a'+i)), schedule.StatusInProgress, now))
	}

	result := AnalyzeRisk(items, SkillCoverageResult{}, ToolCoverageResult{}, now)

	if result.OverwhelmIndex != 0 {
		t.Errorf("OverwhelmIndex = %d, want 0 at the in-progress threshold", result.OverwhelmIndex)
	}
}

func TestAnalyzeRisk_Blockers(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	items := []schedule.WorkItem{
		itemWithStatus("fresh", schedule.StatusBlocked, now.Add(-2*time.Hour)),
		itemWithStatus("stale", schedule.StatusBlocked, now.Add(-72*time.Hour)),
	}

	result := AnalyzeRisk(items, SkillCoverageResult{}, ToolCoverageResult{}, now)

	if result.BlockersCount != 2 {
		t.Errorf("BlockersCount = %d, want 2", result.BlockersCount)
	}
	// 2 blockers * 10 + 1 stale * 15
	if result.OverwhelmIndex != 35 {
		t.Errorf("OverwhelmIndex = %d, want 35", result.OverwhelmIndex)
	}
	if result.RiskLevel != RiskMedium {
		t.Errorf("RiskLevel = %s, want medium", result.RiskLevel)
	}
}

func TestAnalyzeRisk_StaleBlockerBoundary(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	// Exactly 48 hours old is not yet stale; the check is strictly greater.
	items := []schedule.WorkItem{
		itemWithStatus("exact", schedule.StatusBlocked, now.Add(-48*time.Hour)),
	}

	result := AnalyzeRisk(items, SkillCoverageResult{}, ToolCoverageResult{}, now)

	if result.OverwhelmIndex != 10 {
		t.Errorf("OverwhelmIndex = %d, want 10 (blocker only, not stale)", result.OverwhelmIndex)
	}
}

func TestAnalyzeRisk_MissingCriticalSkills(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	skills := SkillCoverageResult{
		MissingSkills: []RequiredSkill{
			{Name: "Kubernetes", Importance: 5},
			{Name: "Terraform", Importance: 4},
			{Name: "Bash", Importance: 2},
		},
	}

	result := AnalyzeRisk(nil, skills, ToolCoverageResult{}, now)

	// Importance >= 4 counts as critical: two skills * 15.
	if result.OverwhelmIndex != 30 {
		t.Errorf("OverwhelmIndex = %d, want 30", result.OverwhelmIndex)
	}
	if result.RiskLevel != RiskMedium {
		t.Errorf("RiskLevel = %s, want medium", result.RiskLevel)
	}
}

func TestAnalyzeRisk_EssentialToolsAndLargeWorkload(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	items := make([]schedule.WorkItem, 0, 21)
	for i := 0; i < 21; i++ {
		items = append(items, itemWithStatus(string(rune('a'+i)), schedule.StatusNotStarted, now))
	}
	tools := ToolCoverageResult{EssentialMissingCount: 2}

	result := AnalyzeRisk(items, SkillCoverageResult{}, tools, now)

	// 2 essential tools * 10 + large workload 10.
	if result.OverwhelmIndex != 30 {
		t.Errorf("OverwhelmIndex = %d, want 30", result.OverwhelmIndex)
	}
}

func TestAnalyzeRisk_IndexClampedAt100(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	items := make([]schedule.WorkItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, itemWithStatus(string(rune('a'+i)), schedule.StatusBlocked, now.Add(-100*time.Hour)))
	}

	result := AnalyzeRisk(items, SkillCoverageResult{}, ToolCoverageResult{}, now)

	if result.OverwhelmIndex != 100 {
		t.Errorf("OverwhelmIndex = %d, want clamped to 100", result.OverwhelmIndex)
	}
	if result.RiskLevel != RiskHigh {
		t.Errorf("RiskLevel = %s, want high", result.RiskLevel)
	}
}

func TestAnalyzeRisk_ComplexityScore(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	skills := SkillCoverageResult{
		Gaps: []SkillGap{{Name: "a"}, {Name: "b"}, {Name: "c"}},
	}
	tools := ToolCoverageResult{
		MissingTools: []ToolGap{{Name: "x"}, {Name: "y"}},
	}

	result := AnalyzeRisk(nil, skills, tools, now)

	// Gaps weigh double, missing tools single: 3*2 + 2.
	if result.ComplexityScore != 8 {
		t.Errorf("ComplexityScore = %d, want 8", result.ComplexityScore)
	}
	// The complexity score does not feed the overwhelm index.
	if result.OverwhelmIndex != 0 {
		t.Errorf("OverwhelmIndex = %d, want 0", result.OverwhelmIndex)
	}
}

func TestAnalyzeRisk_Idempotent(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	items := []schedule.WorkItem{
		itemWithStatus("blocked", schedule.StatusBlocked, now.Add(-72*time.Hour)),
		itemWithStatus("active", schedule.StatusInProgress, now),
	}
	skills := SkillCoverageResult{MissingSkills: []RequiredSkill{{Name: "Go", Importance: 5}}}

	first := AnalyzeRisk(items, skills, ToolCoverageResult{}, now)
	second := AnalyzeRisk(items, skills, ToolCoverageResult{}, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs: %+v vs %+v", first, second)
	}
}

func TestRiskLevel_IsValid(t *testing.T) {
	tests := []struct {
		level RiskLevel
		valid bool
	}{
		{RiskLow, true},
		{RiskMedium, true},
		{RiskHigh, true},
		{RiskLevel("extreme"), false},
		{RiskLevel(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
