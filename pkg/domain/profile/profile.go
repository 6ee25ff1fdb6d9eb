// Package profile holds the person's side of an assessment: the skills and
// tools they currently have.
package profile

import (
	"fmt"
	"strings"

	"feasly/pkg/domain/feasibility"
)

// Profile is the personal inventory stored in .feasly/profile.yaml.
type Profile struct {
	Name   string              `json:"name" yaml:"name"`
	Skills []feasibility.Skill `json:"skills" yaml:"skills"`
	Tools  []feasibility.Tool  `json:"tools" yaml:"tools"`
}

// FindSkill returns the skill with the given name (case-insensitive), or nil
// if not present.
func (p *Profile) FindSkill(name string) *feasibility.Skill {
	for i := range p.Skills {
		if strings.EqualFold(p.Skills[i].Name, name) {
			return &p.Skills[i]
		}
	}
	return nil
}

// SetSkill adds a skill or updates its proficiency if already present.
func (p *Profile) SetSkill(name string, proficiency int) error {
	skill, err := feasibility.NewSkill(name, proficiency)
	if err != nil {
		return err
	}
	if existing := p.FindSkill(name); existing != nil {
		existing.Proficiency = proficiency
		return nil
	}
	p.Skills = append(p.Skills, skill)
	return nil
}

// RemoveSkill removes a skill by name. Returns an error if not found.
func (p *Profile) RemoveSkill(name string) error {
	for i := range p.Skills {
		if strings.EqualFold(p.Skills[i].Name, name) {
			p.Skills = append(p.Skills[:i], p.Skills[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("skill not found: %s", name)
}

// HasTool returns true if the profile lists the tool (case-insensitive).
func (p *Profile) HasTool(name string) bool {
	for _, t := range p.Tools {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// AddTool adds a tool if not already present.
func (p *Profile) AddTool(name string) error {
	tool, err := feasibility.NewTool(name)
	if err != nil {
		return err
	}
	if p.HasTool(name) {
		return nil
	}
	p.Tools = append(p.Tools, tool)
	return nil
}

// RemoveTool removes a tool by name. Returns an error if not found.
func (p *Profile) RemoveTool(name string) error {
	for i := range p.Tools {
		if strings.EqualFold(p.Tools[i].Name, name) {
			p.Tools = append(p.Tools[:i], p.Tools[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("tool not found: %s", name)
}
