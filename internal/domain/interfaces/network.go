package interfaces

import (
	"context"

	"macshift/internal/domain/entities"
)

// InterfaceReader reads the current hardware address of a network interface.
type InterfaceReader interface {
	// ReadMAC returns the interface's current hardware address. A not-found
	// error means the interface is missing, inaccessible, or its address
	// could not be extracted from the tool output.
	ReadMAC(ctx context.Context, name entities.InterfaceName) (entities.MacAddress, error)
}

// InterfaceMutator applies a new hardware address to a network interface.
type InterfaceMutator interface {
	// ApplyMAC brings the interface down, rewrites its hardware address and
	// brings it back up. It stops at the first failing command.
	ApplyMAC(ctx context.Context, name entities.InterfaceName, target entities.MacAddress) error
}
