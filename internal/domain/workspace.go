package domain

// WorkspaceSpec describes where a workspace is created.
type WorkspaceSpec struct {
	Root string
}
