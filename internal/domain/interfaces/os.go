package interfaces

import (
	"context"
	"time"
)

// CommandExecutor executes external system commands.
type CommandExecutor interface {
	// Execute runs a command and returns its combined stdout and stderr.
	Execute(ctx context.Context, command string, args ...string) ([]byte, error)

	// ExecuteWithTimeout runs a command, giving up after timeout.
	// A zero timeout disables the limit.
	ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error)
}

// PrivilegeChecker reports whether the process may reconfigure interfaces.
type PrivilegeChecker interface {
	// IsPrivileged returns true when the process runs with root privileges.
	IsPrivileged() bool
}

// FileSystem abstracts read-only file system access.
type FileSystem interface {
	// ReadFile reads a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks whether a file or directory exists.
	Exists(path string) bool
}

// Clock abstracts time access.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
