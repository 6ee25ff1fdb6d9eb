package cli

import (
	"errors"
	"fmt"

	"feasly/pkg/domain"
	"feasly/pkg/domain/feasibility"
	"feasly/pkg/domain/schedule"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrNotInitialized):
		return NewCLIError("workspace not initialized", "Run 'feasly init <name>' to set up a workspace", err)
	case errors.Is(err, domain.ErrNoProject):
		return NewCLIError("no project found", "Run 'feasly init <name>' to create one", err)
	case errors.Is(err, domain.ErrNoProfile):
		return NewCLIError("no profile found", "Run 'feasly skills set <name> <proficiency>' to start one", err)
	case errors.Is(err, domain.ErrItemNotFound):
		return NewCLIError("schedule item not found", "Run 'feasly schedule list' to see item IDs", err)
	case errors.Is(err, schedule.ErrEndBeforeStart):
		return NewCLIError("invalid item dates", "The end date must not be before the start date", err)
	case errors.Is(err, feasibility.ErrInvalidWeeklyHours):
		return NewCLIError("invalid capacity settings", "Available hours per week must be positive", err)
	case errors.Is(err, feasibility.ErrInvalidDailyHours):
		return NewCLIError("invalid capacity settings", "Hours per day must be positive", err)
	}

	return err
}
