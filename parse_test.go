package cusbc

import (
	"errors"
	"testing"
)

func TestParseHubList(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string
		wantErr  bool
	}{
		{"two hubs", "0002COM3,COM4", []string{"COM3", "COM4"}, false},
		{"one hub", "0001COM1", []string{"COM1"}, false},
		{"no hubs", "0000", nil, false},
		{"count exceeds list", "0003COM3,COM4", nil, true},
		{"count below list", "0001COM3,COM4", nil, true},
		{"non-numeric count", "00xxCOM3", nil, true},
		{"negative count", "-001COM3", nil, true},
		{"short output", "00", nil, true},
		{"empty output", "", nil, true},
		{"empty identifier", "0002COM3,", nil, true},
		{"zero count with trailing list", "0000COM3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, err := parseHubList(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHubList(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if len(ports) != len(tt.expected) {
				t.Fatalf("parseHubList(%q) = %v, expected %v", tt.output, ports, tt.expected)
			}
			for i := range ports {
				if ports[i] != tt.expected[i] {
					t.Errorf("port[%d] = %q, expected %q", i, ports[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseHubInfo(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		numPorts   int
		firmware   string
		portStates PortStates
		wantErr    bool
	}{
		{
			name:     "four port hub",
			output:   "0500000004v1.23",
			numPorts: 4,
			firmware: "v1.23",
			// First hex byte covers ports 1-8, 0x05 = ports 1 and 3 on
			portStates: PortStates{true, false, true, false},
		},
		{
			name:     "sixteen port hub",
			output:   "FF01000010fw",
			numPorts: 16,
			firmware: "fw",
			// Byte 0xFF covers ports 1-8, byte 0x01 turns on port 9
			portStates: vectorFromBits(0x01FF, 16),
		},
		{
			name:       "empty firmware field",
			output:     "0000000008",
			numPorts:   8,
			firmware:   "",
			portStates: make(PortStates, 8),
		},
		{"short output", "00000005", 0, "", nil, true},
		{"empty output", "", 0, "", nil, true},
		{"bad state field", "XXXXXXXX04v1", 0, "", nil, true},
		{"bad count field", "00000005ZZv1", 0, "", nil, true},
		{"count exceeds state bits", "00000005FFv1", 0, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := parseHubInfo("COM3", tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHubInfo(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if info.Port != "COM3" {
				t.Errorf("Port = %q, expected COM3", info.Port)
			}
			if info.NumPorts != tt.numPorts {
				t.Errorf("NumPorts = %d, expected %d", info.NumPorts, tt.numPorts)
			}
			if info.FirmwareVersion != tt.firmware {
				t.Errorf("FirmwareVersion = %q, expected %q", info.FirmwareVersion, tt.firmware)
			}
			if len(info.PortStates) != tt.numPorts {
				t.Fatalf("len(PortStates) = %d, expected declared count %d", len(info.PortStates), tt.numPorts)
			}
			if !statesEqual(info.PortStates, tt.portStates) {
				t.Errorf("PortStates = %v, expected %v", info.PortStates, tt.portStates)
			}
		})
	}
}
