package feasibility

import "fmt"

// Tool is a tool or resource the person has access to.
type Tool struct {
	Name string `json:"name" yaml:"name"`
}

// NewTool constructs a validated tool.
func NewTool(name string) (Tool, error) {
	if name == "" {
		return Tool{}, fmt.Errorf("tool name cannot be empty")
	}
	return Tool{Name: name}, nil
}

// RequiredTool is a tool a project calls for. Essential tools must be
// available before work can begin; EstimatedCost is the cost of acquiring
// the tool when it is missing (zero when unknown or free).
type RequiredTool struct {
	Name          string  `json:"name" yaml:"name"`
	Category      string  `json:"category" yaml:"category"`
	Essential     bool    `json:"essential" yaml:"essential"`
	EstimatedCost float64 `json:"estimated_cost" yaml:"estimated_cost"`
}

// NewRequiredTool constructs a validated required tool. The estimated cost
// must be non-negative.
func NewRequiredTool(name, category string, essential bool, estimatedCost float64) (RequiredTool, error) {
	if name == "" {
		return RequiredTool{}, fmt.Errorf("required tool name cannot be empty")
	}
	if estimatedCost < 0 {
		return RequiredTool{}, fmt.Errorf("required tool %s: estimated cost cannot be negative", name)
	}
	return RequiredTool{Name: name, Category: category, Essential: essential, EstimatedCost: estimatedCost}, nil
}

// ToolGap is a required tool the person does not have.
type ToolGap struct {
	Name      string  `json:"name" yaml:"name"`
	Category  string  `json:"category" yaml:"category"`
	Cost      float64 `json:"cost" yaml:"cost"`
	Essential bool    `json:"essential" yaml:"essential"`
}
