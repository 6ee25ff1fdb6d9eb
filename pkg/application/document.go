package application

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/profile"
	"feasly/pkg/domain/project"
	"feasly/pkg/domain/schedule"
)

// documentSchemaJSON validates one-shot assessment documents before they are
// decoded, so malformed input fails with a schema error rather than a partial
// unmarshal.
const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["required_skills", "required_tools"],
  "properties": {
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "proficiency"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "proficiency": { "type": "integer", "minimum": 0, "maximum": 5 }
        }
      }
    },
    "required_skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "importance"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "importance": { "type": "integer", "minimum": 0, "maximum": 5 },
          "learning_hours": { "type": "number", "minimum": 0 }
        }
      }
    },
    "tools": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": { "type": "string", "minLength": 1 }
        }
      }
    },
    "required_tools": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "category": { "type": "string" },
          "essential": { "type": "boolean" },
          "estimated_cost": { "type": "number", "minimum": 0 }
        }
      }
    },
    "work_items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["status", "start_date", "end_date"],
        "properties": {
          "id": { "type": "string" },
          "title": { "type": "string" },
          "status": { "enum": ["not_started", "in_progress", "blocked", "completed"] },
          "start_date": { "type": "string", "format": "date-time" },
          "end_date": { "type": "string", "format": "date-time" },
          "created_at": { "type": "string", "format": "date-time" }
        }
      }
    },
    "settings": {
      "type": "object",
      "properties": {
        "available_hours_per_week": { "type": "number", "exclusiveMinimum": 0 },
        "hours_per_day": { "type": "number", "exclusiveMinimum": 0 }
      }
    }
  }
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchemaJSON)

// AssessmentDocument is a self-contained set of assessment inputs, used for
// one-shot runs that bypass the workspace (e.g. piping a document through the
// CLI in CI).
type AssessmentDocument struct {
	Skills         []feasibility.Skill         `json:"skills"`
	RequiredSkills []feasibility.RequiredSkill `json:"required_skills"`
	Tools          []feasibility.Tool          `json:"tools"`
	RequiredTools  []feasibility.RequiredTool  `json:"required_tools"`
	WorkItems      []schedule.WorkItem         `json:"work_items"`
	Settings       *feasibility.Config         `json:"settings,omitempty"`
}

// ParseAssessmentDocument validates raw JSON against the document schema and
// decodes it.
func ParseAssessmentDocument(data []byte) (*AssessmentDocument, error) {
	docLoader := gojsonschema.NewBytesLoader(data)
	validation, err := gojsonschema.Validate(documentSchemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate assessment document: %w", err)
	}
	if !validation.Valid() {
		msgs := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid assessment document: %v", msgs)
	}

	var doc AssessmentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment document: %w", err)
	}
	return &doc, nil
}

// Config returns the document's settings merged over the defaults. The
// reference clock is left unset; the assess service stamps it.
func (d *AssessmentDocument) Config() feasibility.Config {
	cfg := feasibility.DefaultConfig(time.Time{})
	if d.Settings != nil {
		if d.Settings.AvailableHoursPerWeek > 0 {
			cfg.AvailableHoursPerWeek = d.Settings.AvailableHoursPerWeek
		}
		if d.Settings.HoursPerDay > 0 {
			cfg.HoursPerDay = d.Settings.HoursPerDay
		}
	}
	return cfg
}

// Profile returns the person's side of the document.
func (d *AssessmentDocument) Profile() *profile.Profile {
	return &profile.Profile{Skills: d.Skills, Tools: d.Tools}
}

// Project returns the project's side of the document.
func (d *AssessmentDocument) Project() *project.Project {
	return &project.Project{RequiredSkills: d.RequiredSkills, RequiredTools: d.RequiredTools}
}
