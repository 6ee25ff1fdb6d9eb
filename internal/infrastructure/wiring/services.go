package wiring

import (
	"feasly/pkg/application"
)

// AppServices exposes the application layer services wired together with a
// workspace.
type AppServices struct {
	Workspace *Workspace
	Init      *application.InitService
	Assess    *application.AssessService
	Profile   *application.ProfileService
	Project   *application.ProjectService
	Schedule  *application.ScheduleService
}

// BuildAppServices constructs the services for a workspace root.
func BuildAppServices(root string) *AppServices {
	workspace := NewWorkspace(root)

	return &AppServices{
		Workspace: workspace,
		Init:      application.NewInitService(workspace.Repo),
		Assess:    application.NewAssessService(workspace.Repo),
		Profile:   application.NewProfileService(workspace.Repo),
		Project:   application.NewProjectService(workspace.Repo),
		Schedule:  application.NewScheduleService(workspace.Repo),
	}
}
