package usecases

import (
	"context"
	"fmt"
	"time"

	"macshift/internal/domain/entities"
	"macshift/internal/domain/errors"
	"macshift/internal/domain/interfaces"
	"macshift/internal/domain/services"
	"macshift/internal/infrastructure/ui"

	"github.com/sirupsen/logrus"
)

// ChangeMACUseCase drives the full change sequence: resolve the target
// address, record the current one, rewrite it and verify the result.
type ChangeMACUseCase struct {
	reader    interfaces.InterfaceReader
	mutator   interfaces.InterfaceMutator
	generator *services.MacGeneratorService
	clock     interfaces.Clock
	printer   *ui.Printer
	logger    *logrus.Logger
}

// NewChangeMACUseCase creates a new ChangeMACUseCase
func NewChangeMACUseCase(
	reader interfaces.InterfaceReader,
	mutator interfaces.InterfaceMutator,
	generator *services.MacGeneratorService,
	clock interfaces.Clock,
	printer *ui.Printer,
	logger *logrus.Logger,
) *ChangeMACUseCase {
	return &ChangeMACUseCase{
		reader:    reader,
		mutator:   mutator,
		generator: generator,
		clock:     clock,
		printer:   printer,
		logger:    logger,
	}
}

// ChangeMACInput is the use case input.
type ChangeMACInput struct {
	InterfaceName string

	// TargetMAC is the explicit address; empty means none was given.
	TargetMAC string

	// Random requests a generated address. An explicit TargetMAC wins over it.
	Random bool
}

// ChangeMACOutput reports the addresses involved in a completed change.
type ChangeMACOutput struct {
	InterfaceName string
	PreviousMAC   entities.MacAddress
	TargetMAC     entities.MacAddress

	// FinalMAC is the address read back after the change, in the tool's casing.
	FinalMAC entities.MacAddress

	Duration time.Duration
}

// Execute runs the change sequence. Any returned error means no verified
// change; the interface may still have been partially mutated.
func (uc *ChangeMACUseCase) Execute(ctx context.Context, input ChangeMACInput) (*ChangeMACOutput, error) {
	start := uc.clock.Now()

	name, err := entities.NewInterfaceName(input.InterfaceName)
	if err != nil {
		return nil, errors.NewValidationError("interface name must not be empty", err)
	}

	target, err := uc.resolveTarget(input)
	if err != nil {
		return nil, err
	}

	current, err := uc.reader.ReadMAC(ctx, name)
	if err != nil {
		return nil, err
	}

	uc.printer.Successf("Current MAC : %s", current)
	uc.printer.Successf("Target  MAC : %s", target)

	if err := uc.mutator.ApplyMAC(ctx, name, target); err != nil {
		return nil, err
	}

	final, err := uc.reader.ReadMAC(ctx, name)
	if err != nil {
		return nil, errors.NewVerificationError(
			fmt.Sprintf("could not re-read interface %s after the change", name), err,
		)
	}
	if !final.Equals(target) {
		return nil, errors.NewVerificationError(
			fmt.Sprintf("MAC address of %s did not change as expected (read back %s)", name, final), nil,
		)
	}

	duration := uc.clock.Now().Sub(start)
	uc.logger.WithFields(logrus.Fields{
		"interface":    name.String(),
		"previous_mac": current.String(),
		"new_mac":      final.String(),
		"duration":     duration,
	}).Info("hardware address changed")

	return &ChangeMACOutput{
		InterfaceName: name.String(),
		PreviousMAC:   current,
		TargetMAC:     target,
		FinalMAC:      final,
		Duration:      duration,
	}, nil
}

// resolveTarget picks the explicit address when one is given; the random flag
// applies only otherwise.
func (uc *ChangeMACUseCase) resolveTarget(input ChangeMACInput) (entities.MacAddress, error) {
	if input.TargetMAC != "" {
		mac, err := entities.NewMacAddress(input.TargetMAC)
		if err != nil {
			return entities.MacAddress{}, errors.NewValidationError(
				fmt.Sprintf("invalid MAC address format: %q", input.TargetMAC), err,
			)
		}
		return mac, nil
	}

	if input.Random {
		mac, err := uc.generator.Generate()
		if err != nil {
			return entities.MacAddress{}, err
		}
		uc.logger.WithField("mac", mac.String()).Debug("generated random hardware address")
		return mac, nil
	}

	return entities.MacAddress{}, errors.NewValidationError(
		"no target address: specify a MAC address or request a random one", nil,
	)
}
