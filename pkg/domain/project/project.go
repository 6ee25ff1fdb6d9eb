// Package project holds the project's side of an assessment: the skills and
// tools it requires.
package project

import (
	"fmt"
	"strings"

	"feasly/pkg/domain/feasibility"
)

// Project describes what a candidate project demands, stored in
// .feasly/project.yaml.
type Project struct {
	Name           string                      `json:"name" yaml:"name"`
	Description    string                      `json:"description,omitempty" yaml:"description,omitempty"`
	RequiredSkills []feasibility.RequiredSkill `json:"required_skills" yaml:"required_skills"`
	RequiredTools  []feasibility.RequiredTool  `json:"required_tools" yaml:"required_tools"`
}

// RequireSkill adds a required skill or updates it if already listed.
func (p *Project) RequireSkill(name string, importance int, learningHours float64) error {
	req, err := feasibility.NewRequiredSkill(name, importance, learningHours)
	if err != nil {
		return err
	}
	for i := range p.RequiredSkills {
		if strings.EqualFold(p.RequiredSkills[i].Name, name) {
			p.RequiredSkills[i] = req
			return nil
		}
	}
	p.RequiredSkills = append(p.RequiredSkills, req)
	return nil
}

// RequireTool adds a required tool or updates it if already listed.
func (p *Project) RequireTool(name, category string, essential bool, estimatedCost float64) error {
	req, err := feasibility.NewRequiredTool(name, category, essential, estimatedCost)
	if err != nil {
		return err
	}
	for i := range p.RequiredTools {
		if strings.EqualFold(p.RequiredTools[i].Name, name) {
			p.RequiredTools[i] = req
			return nil
		}
	}
	p.RequiredTools = append(p.RequiredTools, req)
	return nil
}

// Validate re-applies the range checks on every requirement. Used after
// loading documents that bypassed the constructors.
func (p *Project) Validate() error {
	for _, s := range p.RequiredSkills {
		if _, err := feasibility.NewRequiredSkill(s.Name, s.Importance, s.LearningHours); err != nil {
			return fmt.Errorf("project %s: %w", p.Name, err)
		}
	}
	for _, t := range p.RequiredTools {
		if _, err := feasibility.NewRequiredTool(t.Name, t.Category, t.Essential, t.EstimatedCost); err != nil {
			return fmt.Errorf("project %s: %w", p.Name, err)
		}
	}
	return nil
}
