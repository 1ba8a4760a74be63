package adapters

import (
	"os"

	"macshift/internal/domain/interfaces"
)

// RealPrivilegeChecker is a PrivilegeChecker implementation backed by the
// OS-reported effective user identity.
type RealPrivilegeChecker struct{}

// NewRealPrivilegeChecker creates a new RealPrivilegeChecker
func NewRealPrivilegeChecker() interfaces.PrivilegeChecker {
	return &RealPrivilegeChecker{}
}

// IsPrivileged returns true when the process runs with an effective UID of 0.
func (c *RealPrivilegeChecker) IsPrivileged() bool {
	return os.Geteuid() == 0
}
