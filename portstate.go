package cusbc

import (
	"fmt"
	"strconv"
	"strings"
)

// PortStates is an ordered port power state vector, index 0 = logical port 1.
type PortStates []bool

// Format represents the wire encoding of a port state vector
type Format int

const (
	FormatBitmapped Format = iota // One ASCII '0'/'1' per port
	FormatHex                     // Packed, 8 ports per byte, LSB first
)

func (f Format) String() string {
	switch f {
	case FormatBitmapped:
		return "bitmapped"
	case FormatHex:
		return "hex"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// queryFlag returns the /G mode flag the vendor tool expects
func (f Format) queryFlag() (string, error) {
	switch f {
	case FormatBitmapped:
		return "-B", nil
	case FormatHex:
		return "-H", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMode, f)
	}
}

// setPrefix returns the /S state prefix the vendor tool expects
func (f Format) setPrefix() (string, error) {
	switch f {
	case FormatBitmapped:
		return "B", nil
	case FormatHex:
		return "H", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMode, f)
	}
}

// DecodeBitmapped converts a bit-mapped wire string into logical port order.
// The wire transmits the last port first, so the string is reversed:
// "0010" decodes to ports [off on off off].
func DecodeBitmapped(s string) (PortStates, error) {
	states := make(PortStates, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '0':
			states = append(states, false)
		case '1':
			states = append(states, true)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q in bit-mapped state", ErrInvalidFormat, s[i])
		}
	}
	return states, nil
}

// DecodeHex converts a hex-encoded wire string into logical port order.
// Each byte (two hex digits, left to right) carries 8 port states with the
// least-significant bit first: "F8" decodes to ports 4-8 on, 1-3 off.
//
// The result length is always a multiple of 8; callers truncate to the hub's
// declared port count.
func DecodeHex(s string) (PortStates, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	states := make(PortStates, 0, len(s)*4)
	for i := 0; i < len(s); i += 2 {
		b, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hex state %q", ErrInvalidFormat, s[i:i+2])
		}
		for bit := 0; bit < 8; bit++ {
			states = append(states, b>>bit&1 == 1)
		}
	}
	return states, nil
}

// EncodeBitmapped renders the vector as a bit-mapped wire string, reversing
// back to transmission order (last port first).
func (p PortStates) EncodeBitmapped() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// EncodeHex renders the vector as a hex wire string. The vector is
// zero-extended to a byte boundary so the width is fixed by the port count
// and DecodeHex recovers the encoded states exactly.
func (p PortStates) EncodeHex() string {
	var sb strings.Builder
	sb.Grow((len(p) + 7) / 8 * 2)
	for i := 0; i < len(p); i += 8 {
		var b byte
		for bit := 0; bit < 8 && i+bit < len(p); bit++ {
			if p[i+bit] {
				b |= 1 << bit
			}
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// Encode renders the vector in the requested wire format
func (p PortStates) Encode(format Format) (string, error) {
	switch format {
	case FormatBitmapped:
		return p.EncodeBitmapped(), nil
	case FormatHex:
		return p.EncodeHex(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMode, format)
	}
}

// Decode parses a wire string in the given format into logical port order
func Decode(s string, format Format) (PortStates, error) {
	switch format {
	case FormatBitmapped:
		return DecodeBitmapped(s)
	case FormatHex:
		return DecodeHex(s)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, format)
	}
}
