package cusbc

import (
	"context"
	"fmt"
)

// HubInfo is an immutable snapshot of one hub, created fresh on each query
type HubInfo struct {
	Port            string
	NumPorts        int
	FirmwareVersion string
	PortStates      PortStates
}

// Hub is a session against one USB hub managed through the vendor tool.
// It holds two pieces of mutable state: the selected COM port and the
// optional password. It is not safe for concurrent use; the vendor tool has
// unspecified concurrency behavior, so callers must not overlap operations
// against the same hub.
type Hub struct {
	config Config
}

// New creates a hub session. When no port is configured, the first hub
// reported by the vendor tool is selected on first use.
func New(opts ...Option) (*Hub, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return &Hub{config: config}, nil
}

// Port returns the currently selected COM port, empty until discovery
func (h *Hub) Port() string {
	return h.config.Port
}

// run invokes the vendor tool with the configured timeout bound
func (h *Hub) run(ctx context.Context, args ...string) (string, error) {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}
	return h.config.Runner.Run(ctx, h.config.Executable, args...)
}

// ensurePort returns the selected port, discovering one when unset
func (h *Hub) ensurePort(ctx context.Context) (string, error) {
	if h.config.Port == "" {
		if _, err := h.DiscoverPort(ctx); err != nil {
			return "", err
		}
	}
	return h.config.Port, nil
}

// DiscoverPort queries all hubs and selects the first one's COM port.
// Returns ErrNoHubFound when the tool reports no hubs.
func (h *Hub) DiscoverPort(ctx context.Context) (string, error) {
	output, err := h.run(ctx, "/Q", "-F")
	if err != nil {
		return "", err
	}
	ports, err := parseHubList(output)
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", ErrNoHubFound
	}
	h.config.Port = ports[0]
	return h.config.Port, nil
}

// QueryHubs queries all connected hubs and returns a snapshot of each
func (h *Hub) QueryHubs(ctx context.Context) ([]HubInfo, error) {
	output, err := h.run(ctx, "/Q", "-F")
	if err != nil {
		return nil, err
	}
	ports, err := parseHubList(output)
	if err != nil {
		return nil, err
	}

	hubs := make([]HubInfo, 0, len(ports))
	for _, port := range ports {
		info, err := h.QueryHubInfo(ctx, port)
		if err != nil {
			return nil, fmt.Errorf("querying hub %s: %w", port, err)
		}
		hubs = append(hubs, info)
	}
	return hubs, nil
}

// QueryHubInfo queries a single hub identified by its COM port
func (h *Hub) QueryHubInfo(ctx context.Context, port string) (HubInfo, error) {
	output, err := h.run(ctx, "/Q:"+port, "-F")
	if err != nil {
		return HubInfo{}, err
	}
	return parseHubInfo(port, output)
}

// PortStates reads the hub's current port states in the given wire format
func (h *Hub) PortStates(ctx context.Context, format Format) (PortStates, error) {
	flag, err := format.queryFlag()
	if err != nil {
		return nil, err
	}
	port, err := h.ensurePort(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := h.run(ctx, "/G:"+port, flag)
	if err != nil {
		return nil, err
	}
	return Decode(raw, format)
}

// SetPortStates writes the given port states using the given wire format.
// The password is included when configured; some hubs reject unauthenticated
// writes.
func (h *Hub) SetPortStates(ctx context.Context, states PortStates, format Format) error {
	prefix, err := format.setPrefix()
	if err != nil {
		return err
	}
	encoded, err := states.Encode(format)
	if err != nil {
		return err
	}
	port, err := h.ensurePort(ctx)
	if err != nil {
		return err
	}

	args := []string{"/S:" + port}
	if h.config.Password != "" {
		args = append(args, h.config.Password)
	}
	args = append(args, prefix+":"+encoded)

	_, err = h.run(ctx, args...)
	return err
}

// SaveInitialStates stores the current port states to flash as the hub's
// power-on defaults. Requires a configured password.
func (h *Hub) SaveInitialStates(ctx context.Context) error {
	return h.runWithPassword(ctx, "/W:")
}

// RestoreFactoryDefaults restores the hub's factory settings.
// Requires a configured password.
func (h *Hub) RestoreFactoryDefaults(ctx context.Context) error {
	return h.runWithPassword(ctx, "/D:")
}

// Reset resets the entire hub. Requires a configured password.
func (h *Hub) Reset(ctx context.Context) error {
	return h.runWithPassword(ctx, "/R:")
}

// runWithPassword issues a password-gated command against the selected port
func (h *Hub) runWithPassword(ctx context.Context, command string) error {
	if h.config.Password == "" {
		return ErrMissingPassword
	}
	port, err := h.ensurePort(ctx)
	if err != nil {
		return err
	}
	_, err = h.run(ctx, command+port, h.config.Password)
	return err
}

// ChangePassword changes the hub password. The in-memory password is updated
// only after the tool invocation succeeds.
func (h *Hub) ChangePassword(ctx context.Context, newPassword string) error {
	if h.config.Password == "" {
		return ErrMissingPassword
	}
	port, err := h.ensurePort(ctx)
	if err != nil {
		return err
	}
	if _, err := h.run(ctx, "/P:"+port, h.config.Password, newPassword); err != nil {
		return err
	}
	h.config.Password = newPassword
	return nil
}
