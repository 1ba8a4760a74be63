package services

import (
	"crypto/rand"
	"fmt"
	"strings"

	"macshift/internal/domain/entities"
	"macshift/internal/domain/errors"
)

// randomMacPrefix is the fixed OUI-like prefix of generated addresses.
// 00:16:3e keeps the address in a well-known locally assignable range.
var randomMacPrefix = []byte{0x00, 0x16, 0x3e}

// MacGeneratorService creates random locally-administered unicast MAC addresses.
type MacGeneratorService struct{}

// NewMacGeneratorService creates a new MacGeneratorService.
func NewMacGeneratorService() *MacGeneratorService {
	return &MacGeneratorService{}
}

// Generate returns a random address under the fixed prefix. The fourth octet
// is capped at 0x7f; the fifth and sixth span the full 0x00-0xff range.
func (s *MacGeneratorService) Generate() (entities.MacAddress, error) {
	var suffix [3]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return entities.MacAddress{}, errors.NewSystemError("failed to read random bytes", err)
	}

	octets := []byte{
		randomMacPrefix[0], randomMacPrefix[1], randomMacPrefix[2],
		suffix[0] & 0x7f,
		suffix[1],
		suffix[2],
	}

	parts := make([]string, len(octets))
	for i, octet := range octets {
		parts[i] = fmt.Sprintf("%02x", octet)
	}

	mac, err := entities.NewMacAddress(strings.Join(parts, ":"))
	if err != nil {
		return entities.MacAddress{}, errors.NewSystemError("generated address failed validation", err)
	}
	return mac, nil
}
