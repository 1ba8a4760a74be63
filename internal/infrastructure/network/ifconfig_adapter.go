package network

import (
	"context"
	"fmt"
	"time"

	"macshift/internal/domain/entities"
	"macshift/internal/domain/errors"
	"macshift/internal/domain/interfaces"
	"macshift/internal/infrastructure/ui"

	"github.com/sirupsen/logrus"
)

// IfconfigAdapter reads and mutates interface state through the external
// ifconfig tool. Mutation is the classic down / hw ether / up sequence; a
// failure mid-sequence aborts and can leave the interface down.
type IfconfigAdapter struct {
	commandExecutor interfaces.CommandExecutor
	printer         *ui.Printer
	toolPath        string
	commandTimeout  time.Duration
	logger          *logrus.Logger
}

// NewIfconfigAdapter creates a new IfconfigAdapter.
func NewIfconfigAdapter(
	executor interfaces.CommandExecutor,
	printer *ui.Printer,
	toolPath string,
	commandTimeout time.Duration,
	logger *logrus.Logger,
) *IfconfigAdapter {
	return &IfconfigAdapter{
		commandExecutor: executor,
		printer:         printer,
		toolPath:        toolPath,
		commandTimeout:  commandTimeout,
		logger:          logger,
	}
}

// ReadMAC runs the tool in query mode and extracts the hardware address from
// its combined output.
func (a *IfconfigAdapter) ReadMAC(ctx context.Context, name entities.InterfaceName) (entities.MacAddress, error) {
	ifaceName := name.String()

	a.logger.WithFields(logrus.Fields{
		"interface": ifaceName,
		"tool":      a.toolPath,
	}).Debug("querying interface state")

	output, err := a.commandExecutor.ExecuteWithTimeout(ctx, a.commandTimeout, a.toolPath, ifaceName)
	if err != nil {
		if errors.IsTimeoutError(err) {
			return entities.MacAddress{}, err
		}
		return entities.MacAddress{}, errors.NewNotFoundError(
			fmt.Sprintf("could not read interface %s: check that it exists and is accessible", ifaceName),
		)
	}

	raw, ok := ExtractMAC(string(output))
	if !ok {
		return entities.MacAddress{}, errors.NewNotFoundError(
			fmt.Sprintf("no hardware address found in tool output for interface %s", ifaceName),
		)
	}

	mac, err := entities.NewMacAddress(raw)
	if err != nil {
		return entities.MacAddress{}, errors.NewNotFoundError(
			fmt.Sprintf("extracted hardware address %q for interface %s is malformed", raw, ifaceName),
		)
	}
	return mac, nil
}

// ApplyMAC brings the interface down, rewrites its hardware address and
// brings it back up. Each command must succeed; there is no rollback, so a
// failure after the down step leaves the interface administratively down.
func (a *IfconfigAdapter) ApplyMAC(ctx context.Context, name entities.InterfaceName, target entities.MacAddress) error {
	ifaceName := name.String()

	if target.IsZero() || !entities.IsValidMacAddress(target.String()) {
		return errors.NewValidationError(
			fmt.Sprintf("invalid MAC address format: %q", target.String()), nil,
		)
	}

	steps := []struct {
		message string
		args    []string
	}{
		{
			message: fmt.Sprintf("Shutting down %s...", ifaceName),
			args:    []string{ifaceName, "down"},
		},
		{
			message: fmt.Sprintf("Changing MAC for %s to %s...", ifaceName, target),
			args:    []string{ifaceName, "hw", "ether", target.String()},
		},
		{
			message: fmt.Sprintf("Powering up %s...", ifaceName),
			args:    []string{ifaceName, "up"},
		},
	}

	for _, step := range steps {
		a.printer.Infof("%s", step.message)
		a.logger.WithFields(logrus.Fields{
			"interface": ifaceName,
			"tool":      a.toolPath,
			"args":      step.args,
		}).Debug("executing mutation command")

		if _, err := a.commandExecutor.ExecuteWithTimeout(ctx, a.commandTimeout, a.toolPath, step.args...); err != nil {
			return errors.NewNetworkError(
				fmt.Sprintf("%s %v failed for interface %s", a.toolPath, step.args, ifaceName), err,
			)
		}
	}

	a.logger.WithFields(logrus.Fields{
		"interface": ifaceName,
		"mac":       target.String(),
	}).Debug("mutation sequence completed")
	return nil
}
