package network

import "regexp"

// extractionStrategy pulls a hardware address out of configuration-tool output.
type extractionStrategy struct {
	name    string
	pattern *regexp.Regexp
}

// extract returns the hardware address matched by this strategy, if any.
func (s extractionStrategy) extract(output string) (string, bool) {
	match := s.pattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// extractionStrategies are tried in order; the first match wins. The
// ether-anchored pattern matches modern ifconfig output, the bare pattern
// covers older HWaddr-style formats.
var extractionStrategies = []extractionStrategy{
	{
		name:    "ether",
		pattern: regexp.MustCompile(`ether\s+([0-9a-fA-F:]{17})`),
	},
	{
		name:    "bare",
		pattern: regexp.MustCompile(`([0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5})`),
	},
}

// ExtractMAC returns the first hardware address found in output, along with
// whether any strategy matched.
func ExtractMAC(output string) (string, bool) {
	for _, strategy := range extractionStrategies {
		if mac, ok := strategy.extract(output); ok {
			return mac, true
		}
	}
	return "", false
}
