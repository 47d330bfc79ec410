package cusbc

import (
	"errors"
	"testing"
)

func TestDecodeBitmapped(t *testing.T) {
	tests := []struct {
		input    string
		expected PortStates
		wantErr  bool
	}{
		{"0010", PortStates{false, true, false, false}, false},
		{"1000", PortStates{false, false, false, true}, false},
		{"1111", PortStates{true, true, true, true}, false},
		{"0", PortStates{false}, false},
		{"", PortStates{}, false},
		{"01x0", nil, true},
		{"2010", nil, true},
		{"0 10", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			states, err := DecodeBitmapped(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeBitmapped(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if !statesEqual(states, tt.expected) {
				t.Errorf("DecodeBitmapped(%q) = %v, expected %v", tt.input, states, tt.expected)
			}
		})
	}
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		input    string
		expected PortStates
		wantErr  bool
	}{
		// 0xF8 = 11111000, LSB first
		{"F8", PortStates{false, false, false, true, true, true, true, true}, false},
		{"01", PortStates{true, false, false, false, false, false, false, false}, false},
		{"00", make(PortStates, 8), false},
		// Odd length is left-padded to a byte boundary
		{"F", PortStates{true, true, true, true, false, false, false, false}, false},
		{"", PortStates{}, false},
		{"0102", PortStates{
			true, false, false, false, false, false, false, false,
			false, true, false, false, false, false, false, false,
		}, false},
		{"ZZ", nil, true},
		{"0G", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			states, err := DecodeHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if len(states)%8 != 0 {
				t.Errorf("DecodeHex(%q) length %d is not byte aligned", tt.input, len(states))
			}
			if !statesEqual(states, tt.expected) {
				t.Errorf("DecodeHex(%q) = %v, expected %v", tt.input, states, tt.expected)
			}
		})
	}
}

func TestEncodeBitmapped(t *testing.T) {
	tests := []struct {
		name     string
		states   PortStates
		expected string
	}{
		{"second port on", PortStates{false, true, false, false}, "0010"},
		{"all on", PortStates{true, true, true, true}, "1111"},
		{"empty", PortStates{}, ""},
		{"single", PortStates{true}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.states.EncodeBitmapped(); got != tt.expected {
				t.Errorf("EncodeBitmapped(%v) = %q, expected %q", tt.states, got, tt.expected)
			}
		})
	}
}

func TestEncodeHex(t *testing.T) {
	tests := []struct {
		name     string
		states   PortStates
		expected string
	}{
		{"F8 pattern", PortStates{false, false, false, true, true, true, true, true}, "F8"},
		{"first port", PortStates{true, false, false, false, false, false, false, false}, "01"},
		{"all off", make(PortStates, 8), "00"},
		// Short vectors are zero-extended to the byte boundary
		{"four ports", PortStates{true, false, true, false}, "05"},
		{"two bytes", PortStates{
			true, false, false, false, false, false, false, false,
			false, true, false, false, false, false, false, false,
		}, "0102"},
		{"empty", PortStates{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.states.EncodeHex(); got != tt.expected {
				t.Errorf("EncodeHex(%v) = %q, expected %q", tt.states, got, tt.expected)
			}
		})
	}
}

// TestBitmappedRoundTrip verifies decode(encode(v)) == v for every state
// vector of length up to 10 and spot patterns up to 32
func TestBitmappedRoundTrip(t *testing.T) {
	for length := 0; length <= 10; length++ {
		for bits := 0; bits < 1<<length; bits++ {
			v := vectorFromBits(bits, length)
			decoded, err := DecodeBitmapped(v.EncodeBitmapped())
			if err != nil {
				t.Fatalf("round trip failed for %v: %v", v, err)
			}
			if !statesEqual(decoded, v) {
				t.Fatalf("round trip mismatch: %v -> %q -> %v", v, v.EncodeBitmapped(), decoded)
			}
		}
	}

	for _, bits := range []int{0, 1, 0x40000000, 0x55555555, 0x12345678} {
		v := vectorFromBits(bits, 32)
		decoded, err := DecodeBitmapped(v.EncodeBitmapped())
		if err != nil {
			t.Fatalf("round trip failed for 32-port vector %#x: %v", bits, err)
		}
		if !statesEqual(decoded, v) {
			t.Fatalf("round trip mismatch for 32-port vector %#x", bits)
		}
	}
}

// TestHexRoundTrip verifies decode(encode(v))[:len(v)] == v for byte-aligned
// vectors, and that the truncated property holds for unaligned ones
func TestHexRoundTrip(t *testing.T) {
	for _, length := range []int{8, 16, 24, 32} {
		for _, bits := range []int{0, 1, 0xF8, 0xA5A5, 0x7FFFFFFF, 0x12345678} {
			v := vectorFromBits(bits, length)
			decoded, err := DecodeHex(v.EncodeHex())
			if err != nil {
				t.Fatalf("round trip failed for %d-port vector %#x: %v", length, bits, err)
			}
			if len(decoded) != length {
				t.Fatalf("decoded length = %d, expected %d", len(decoded), length)
			}
			if !statesEqual(decoded, v) {
				t.Fatalf("round trip mismatch for %d-port vector %#x", length, bits)
			}
		}
	}

	// Unaligned vectors come back zero-extended
	v := PortStates{true, false, true}
	decoded, err := DecodeHex(v.EncodeHex())
	if err != nil {
		t.Fatalf("round trip failed for unaligned vector: %v", err)
	}
	if len(decoded) != 8 {
		t.Fatalf("decoded length = %d, expected 8", len(decoded))
	}
	if !statesEqual(decoded[:len(v)], v) {
		t.Errorf("truncated round trip mismatch: %v -> %v", v, decoded)
	}
	for _, s := range decoded[len(v):] {
		if s {
			t.Errorf("padding states should be off, got %v", decoded)
		}
	}
}

func TestFormatSelectors(t *testing.T) {
	if _, err := Decode("00", Format(42)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Decode with unknown format: expected ErrInvalidMode, got %v", err)
	}
	if _, err := (PortStates{true}).Encode(Format(-1)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Encode with unknown format: expected ErrInvalidMode, got %v", err)
	}

	flag, err := FormatBitmapped.queryFlag()
	if err != nil || flag != "-B" {
		t.Errorf("FormatBitmapped.queryFlag() = %q, %v", flag, err)
	}
	flag, err = FormatHex.queryFlag()
	if err != nil || flag != "-H" {
		t.Errorf("FormatHex.queryFlag() = %q, %v", flag, err)
	}
	if _, err := Format(7).queryFlag(); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("unknown queryFlag: expected ErrInvalidMode, got %v", err)
	}

	prefix, err := FormatHex.setPrefix()
	if err != nil || prefix != "H" {
		t.Errorf("FormatHex.setPrefix() = %q, %v", prefix, err)
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatBitmapped, "bitmapped"},
		{FormatHex, "hex"},
		{Format(9), "Format(9)"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Format.String() = %q, expected %q", got, tt.expected)
		}
	}
}

// vectorFromBits builds a state vector where port i is on iff bit i is set
func vectorFromBits(bits, length int) PortStates {
	v := make(PortStates, length)
	for i := range v {
		v[i] = bits>>i&1 == 1
	}
	return v
}

func statesEqual(a, b PortStates) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
