package feasibility

import (
	"math"
	"sort"
	"strings"
)

// SkillGap is a required skill that is either missing entirely or rated
// below the project's importance for it.
type SkillGap struct {
	Name          string  `json:"name" yaml:"name"`
	Importance    int     `json:"importance" yaml:"importance"`
	LearningHours float64 `json:"learning_hours" yaml:"learning_hours"`
	Proficiency   int     `json:"proficiency" yaml:"proficiency"`
	Missing       bool    `json:"missing" yaml:"missing"`
}

// SkillCoverageResult is the outcome of matching a person's skills against a
// project's required skills.
type SkillCoverageResult struct {
	// CoveragePercent is the importance-weighted coverage, 0-100.
	CoveragePercent int `json:"coverage_percent" yaml:"coverage_percent"`

	// MatchedSkills lists the names of required skills the person has,
	// in required-skill input order.
	MatchedSkills []string `json:"matched_skills" yaml:"matched_skills"`

	// Gaps lists required skills that are missing or under-satisfied,
	// in required-skill input order.
	Gaps []SkillGap `json:"gaps" yaml:"gaps"`

	// MissingSkills lists required skills absent from the person's list,
	// in required-skill input order. Missing skills also appear in Gaps.
	MissingSkills []RequiredSkill `json:"missing_skills" yaml:"missing_skills"`
}

// EvaluateSkillCoverage matches the person's skills against the project's
// required skills by name (case-insensitive, exact) and produces an
// importance-weighted coverage score with a gap list.
//
// Each required skill contributes proficiency*importance to the numerator and
// MaxProficiency*importance to the denominator; a skill the person lacks
// contributes zero. A gap is flagged when the skill is missing or when
// proficiency < importance. That last rule compares the 0-5 mastery scale
// directly against the 0-5 criticality scale; it is preserved from the
// observed behavior of the original scoring and is deliberately not "fixed"
// here (see DESIGN.md).
func EvaluateSkillCoverage(userSkills []Skill, requiredSkills []RequiredSkill) SkillCoverageResult {
	result := SkillCoverageResult{
		MatchedSkills: []string{},
		Gaps:          []SkillGap{},
		MissingSkills: []RequiredSkill{},
	}

	if len(requiredSkills) == 0 {
		result.CoveragePercent = 100
		return result
	}

	// First occurrence wins when the person lists a skill twice.
	byName := make(map[string]Skill, len(userSkills))
	for _, s := range userSkills {
		key := strings.ToLower(s.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = s
		}
	}

	var numerator, denominator float64
	for _, req := range requiredSkills {
		weight := float64(req.Importance)
		denominator += float64(MaxProficiency) * weight

		have, ok := byName[strings.ToLower(req.Name)]
		if !ok {
			result.MissingSkills = append(result.MissingSkills, req)
			result.Gaps = append(result.Gaps, SkillGap{
				Name:          req.Name,
				Importance:    req.Importance,
				LearningHours: req.LearningHours,
				Missing:       true,
			})
			continue
		}

		numerator += float64(have.Proficiency) * weight
		result.MatchedSkills = append(result.MatchedSkills, req.Name)

		if have.Proficiency < req.Importance {
			result.Gaps = append(result.Gaps, SkillGap{
				Name:          req.Name,
				Importance:    req.Importance,
				LearningHours: req.LearningHours,
				Proficiency:   have.Proficiency,
			})
		}
	}

	if denominator == 0 {
		// Every required skill carries zero importance; nothing to weigh.
		result.CoveragePercent = 100
		return result
	}

	result.CoveragePercent = int(math.Round(100 * numerator / denominator))
	return result
}

// TopGaps returns up to n gaps ordered by importance descending. The sort is
// stable, so gaps of equal importance keep their input order.
func (r SkillCoverageResult) TopGaps(n int) []SkillGap {
	gaps := make([]SkillGap, len(r.Gaps))
	copy(gaps, r.Gaps)
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Importance > gaps[j].Importance
	})
	if n < len(gaps) {
		gaps = gaps[:n]
	}
	return gaps
}
