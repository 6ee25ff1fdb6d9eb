package wiring

import (
	"feasly/pkg/storage"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Repo *storage.FilesystemRepository
}

func NewWorkspace(root string) *Workspace {
	return &Workspace{
		Repo: storage.NewFilesystemRepository(root),
	}
}

// DocumentsDir returns the directory holding the workspace documents.
func (w *Workspace) DocumentsDir() string {
	return w.Repo.Root() + "/" + storage.FeaslyDir
}
