package ports

import "context"

// GitInfo carries the repository context detected for the working
// directory, used to suggest a category when adding a task from inside a
// checkout.
type GitInfo struct {
	RepoName string
	Branch   string
}

// GitDetector defines the interface for git context detection.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// Detect scans the working directory for git context. Returns an error
	// when the directory is not inside a repository.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)
}
