package entities

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidMacAddress    = errors.New("invalid MAC address format")
	ErrInvalidInterfaceName = errors.New("invalid interface name")
)

// macAddressPattern matches six two-digit hexadecimal groups separated by ':' or '-'.
var macAddressPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)

// MacAddress is a value object for a six-octet hardware address
// (format XX:XX:XX:XX:XX:XX, case-insensitive).
type MacAddress struct {
	value string
}

// NewMacAddress validates raw and wraps it in a MacAddress.
func NewMacAddress(raw string) (MacAddress, error) {
	if !IsValidMacAddress(raw) {
		return MacAddress{}, ErrInvalidMacAddress
	}
	return MacAddress{value: raw}, nil
}

// String returns the address exactly as it was supplied.
func (m MacAddress) String() string {
	return m.value
}

// IsZero reports whether the address is the unset zero value.
func (m MacAddress) IsZero() bool {
	return m.value == ""
}

// Equals compares two addresses case-insensitively.
func (m MacAddress) Equals(other MacAddress) bool {
	return strings.EqualFold(m.value, other.value)
}

// IsValidMacAddress reports whether s is a syntactically valid hardware address.
func IsValidMacAddress(s string) bool {
	return macAddressPattern.MatchString(s)
}

// InterfaceName is a value object identifying a network interface (e.g. eth0).
// Existence is only verified implicitly by the external configuration tool.
type InterfaceName struct {
	value string
}

// NewInterfaceName creates a new interface name.
func NewInterfaceName(name string) (InterfaceName, error) {
	if strings.TrimSpace(name) == "" {
		return InterfaceName{}, ErrInvalidInterfaceName
	}
	return InterfaceName{value: name}, nil
}

// String returns the string representation of the interface name.
func (n InterfaceName) String() string {
	return n.value
}
