package cusbc

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed-width field layout of the per-hub query response (/Q:<port> -F):
// 8 hex chars of port states, 2 hex chars of port count, then the firmware
// version string.
const (
	hubStateFieldLen = 8
	hubCountFieldLen = 2
	hubListPrefixLen = 4
)

// parseHubList parses the query-all response: a 4-digit decimal hub count
// followed by a comma-separated list of port identifiers, e.g.
// "0002COM3,COM4". The declared count must match the list length.
func parseHubList(output string) ([]string, error) {
	if len(output) < hubListPrefixLen {
		return nil, fmt.Errorf("%w: hub list %q shorter than count prefix", ErrInvalidFormat, output)
	}
	prefix := output[:hubListPrefixLen]
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return nil, fmt.Errorf("%w: non-numeric hub count %q", ErrInvalidFormat, prefix)
		}
	}
	count, err := strconv.Atoi(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric hub count %q", ErrInvalidFormat, prefix)
	}

	rest := output[hubListPrefixLen:]
	if count == 0 {
		if rest != "" {
			return nil, fmt.Errorf("%w: hub count 0 but list %q not empty", ErrInvalidFormat, rest)
		}
		return nil, nil
	}

	ports := strings.Split(rest, ",")
	if len(ports) != count {
		return nil, fmt.Errorf("%w: hub count %d does not match %d listed ports", ErrInvalidFormat, count, len(ports))
	}
	for _, port := range ports {
		if port == "" {
			return nil, fmt.Errorf("%w: empty port identifier in hub list %q", ErrInvalidFormat, output)
		}
	}
	return ports, nil
}

// parseHubInfo parses the per-hub query response into a HubInfo snapshot.
// The decoded state field is truncated to the declared port count here, at
// the call site of the hex decoder.
func parseHubInfo(port, output string) (HubInfo, error) {
	if len(output) < hubStateFieldLen+hubCountFieldLen {
		return HubInfo{}, fmt.Errorf("%w: hub info %q shorter than fixed fields", ErrInvalidFormat, output)
	}

	states, err := DecodeHex(output[:hubStateFieldLen])
	if err != nil {
		return HubInfo{}, err
	}

	countField := output[hubStateFieldLen : hubStateFieldLen+hubCountFieldLen]
	numPorts, err := strconv.ParseUint(countField, 16, 8)
	if err != nil {
		return HubInfo{}, fmt.Errorf("%w: invalid port count %q", ErrInvalidFormat, countField)
	}
	if int(numPorts) > len(states) {
		return HubInfo{}, fmt.Errorf("%w: port count %d exceeds %d decoded states", ErrInvalidFormat, numPorts, len(states))
	}

	return HubInfo{
		Port:            port,
		NumPorts:        int(numPorts),
		FirmwareVersion: output[hubStateFieldLen+hubCountFieldLen:],
		PortStates:      states[:numPorts],
	}, nil
}
