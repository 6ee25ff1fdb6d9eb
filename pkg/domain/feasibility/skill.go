// Package feasibility implements the project feasibility assessment engine:
// pure evaluators that turn a person's skills and tools, a project's
// requirements, and a work schedule into a composite 0-100 feasibility score
// with a status bucket and actionable recommendations.
//
// Every function in this package is referentially transparent. There is no
// I/O, no clock access (time is injected through Config.Now), and inputs are
// never mutated.
package feasibility

import "fmt"

// Rating scale bounds shared by proficiency and importance.
const (
	MinRating = 0
	MaxRating = 5
)

// MaxProficiency is the highest attainable proficiency and the denominator
// weight in skill coverage scoring.
const MaxProficiency = MaxRating

// Skill is a skill the person currently has, rated 0-5.
type Skill struct {
	Name        string `json:"name" yaml:"name"`
	Proficiency int    `json:"proficiency" yaml:"proficiency"`
}

// NewSkill constructs a validated skill. Proficiency must be within 0-5.
func NewSkill(name string, proficiency int) (Skill, error) {
	if name == "" {
		return Skill{}, fmt.Errorf("skill name cannot be empty")
	}
	if proficiency < MinRating || proficiency > MaxRating {
		return Skill{}, fmt.Errorf("skill %s: proficiency must be between %d and %d, got %d", name, MinRating, MaxRating, proficiency)
	}
	return Skill{Name: name, Proficiency: proficiency}, nil
}

// RequiredSkill is a skill a project calls for, weighted by how critical it
// is (importance, 0-5) with an estimate of the hours needed to acquire it
// from zero.
type RequiredSkill struct {
	Name          string  `json:"name" yaml:"name"`
	Importance    int     `json:"importance" yaml:"importance"`
	LearningHours float64 `json:"learning_hours" yaml:"learning_hours"`
}

// NewRequiredSkill constructs a validated required skill. Importance must be
// within 0-5 and learning hours non-negative.
func NewRequiredSkill(name string, importance int, learningHours float64) (RequiredSkill, error) {
	if name == "" {
		return RequiredSkill{}, fmt.Errorf("required skill name cannot be empty")
	}
	if importance < MinRating || importance > MaxRating {
		return RequiredSkill{}, fmt.Errorf("required skill %s: importance must be between %d and %d, got %d", name, MinRating, MaxRating, importance)
	}
	if learningHours < 0 {
		return RequiredSkill{}, fmt.Errorf("required skill %s: learning hours cannot be negative", name)
	}
	return RequiredSkill{Name: name, Importance: importance, LearningHours: learningHours}, nil
}

// IsCritical returns true if the skill is critical to the project.
// Missing critical skills drive the risk analysis.
func (r RequiredSkill) IsCritical() bool {
	return r.Importance >= CriticalImportance
}

// CriticalImportance is the importance threshold at or above which a missing
// skill counts as critical.
const CriticalImportance = 4
