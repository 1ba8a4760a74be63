package adapters

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"macshift/internal/domain/errors"
	"macshift/internal/domain/interfaces"
)

// RealCommandExecutor is a CommandExecutor implementation that executes actual system commands
type RealCommandExecutor struct{}

// NewRealCommandExecutor creates a new RealCommandExecutor
func NewRealCommandExecutor() interfaces.CommandExecutor {
	return &RealCommandExecutor{}
}

// Execute executes a command and returns its combined stdout and stderr.
// Interface-configuration tools write diagnostics to either stream depending
// on version, so both are captured for parsing.
func (e *RealCommandExecutor) Execute(ctx context.Context, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, errors.NewSystemError(
			fmt.Sprintf("command execution failed: %s %v", command, args),
			fmt.Errorf("%w, output: %s", err, strings.TrimSpace(string(output))),
		)
	}

	return output, nil
}

// ExecuteWithTimeout executes a command with a timeout. A zero or negative
// timeout runs the command without a deadline.
func (e *RealCommandExecutor) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error) {
	if timeout <= 0 {
		return e.Execute(ctx, command, args...)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := e.Execute(ctx, command, args...)
	if err != nil {
		// Convert to timeout error when context deadline exceeded
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewTimeoutError(
				fmt.Sprintf("command execution timeout: %s %v (timeout: %v)", command, args, timeout),
			)
		}
		return output, err
	}

	return output, nil
}
