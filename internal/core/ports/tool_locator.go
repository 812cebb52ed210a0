package ports

// ToolLocator finds the version-control executable.
//
//go:generate mockgen -source=tool_locator.go -destination=mocks/mock_tool_locator.go -package=mocks
type ToolLocator interface {
	// Find returns the absolute path of the executable.
	// An empty searchPath means the process PATH.
	// It returns domain.ErrToolNotFound when no executable is found.
	Find(searchPath string) (string, error)
}
