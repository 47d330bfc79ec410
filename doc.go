// Package cusbc provides a clean, idiomatic Go wrapper around the vendor
// CUSBC.exe tool for controlling USB hub port power over a serial (COM)
// connection.
//
// The vendor tool is treated as an opaque process: this package builds its
// argument vectors, runs it with a bounded timeout, and parses its
// fixed-width textual responses into structured data. The core of the
// package is the bidirectional codec between the tool's bit-mapped and hex
// wire formats and logical boolean port state vectors.
//
// # Basic Usage
//
// Create a hub session and read port states. When no port is configured,
// the first hub reported by the tool is selected automatically:
//
//	hub, err := cusbc.New(cusbc.WithPassword("pass"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	states, err := hub.PortStates(ctx, cusbc.FormatBitmapped)
//	fmt.Println(states) // [true false true false]
//
// Switch ports on or off by writing a full state vector:
//
//	err = hub.SetPortStates(ctx, cusbc.PortStates{true, false, true, false}, cusbc.FormatBitmapped)
//
// # Discovery
//
// Enumerate all connected hubs with firmware and per-port detail:
//
//	hubs, err := hub.QueryHubs(ctx)
//	for _, info := range hubs {
//	    fmt.Printf("%s: %d ports, firmware %s\n", info.Port, info.NumPorts, info.FirmwareVersion)
//	}
//
// # Wire Formats
//
// Port states travel in one of two formats. FormatBitmapped is one ASCII
// bit per port, last port transmitted first. FormatHex packs 8 ports per
// byte, least-significant bit first within each byte. The codec functions
// DecodeBitmapped, DecodeHex and the PortStates Encode methods are exposed
// for callers that handle raw wire strings themselves.
//
// # Password-Gated Operations
//
// Saving power-on defaults, restoring factory settings, resetting the hub
// and changing the password all require a configured password and fail with
// ErrMissingPassword before any process invocation:
//
//	err = hub.SaveInitialStates(ctx)
//	err = hub.ChangePassword(ctx, "newpass")
//
// # Error Handling
//
// The package provides specific error types for robust error handling:
//
//	var (
//	    ErrNoHubFound         // Discovery found no hubs
//	    ErrInvalidMode        // Unknown wire format selector
//	    ErrMissingPassword    // Password-gated operation without password
//	    ErrInvalidFormat      // Malformed wire string or tool response
//	    ErrProcessFailure     // Tool exited non-zero or could not run
//	    ErrExecutableNotFound // Vendor tool missing
//	)
//
// Use errors.Is() for error type checking:
//
//	if errors.Is(err, cusbc.ErrMissingPassword) {
//	    // Prompt for a password
//	}
//
// # Concurrency
//
// A Hub is not safe for concurrent use. The vendor tool has unspecified
// concurrency behavior, so overlapping operations against the same hub must
// be avoided entirely.
package cusbc
