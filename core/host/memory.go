package host

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/dmitrymomot/broadcast/core/receiver"
)

// MemoryHost is an in-memory implementation of receiver.Host suitable for
// tests, local development, and single-process applications. It keeps a
// registration table and a per-action sticky store, and simulates the
// platform's exposure model: not-exported registrations are unreachable from
// foreign senders, and permission-gated registrations only receive from
// senders holding the required permission.
//
// MemoryHost is thread-safe and can handle concurrent registrations and
// broadcasts.
//
// Example:
//
//	h := host.NewMemoryHost("com.example.app", 33,
//	    host.WithLogger(logger),
//	    host.WithManifestPermissions("com.example.app"+receiver.NotExportedPermissionSuffix),
//	)
//	defer h.Close()
type MemoryHost struct {
	pkg      string
	apiLevel int
	logger   *slog.Logger

	mu     sync.RWMutex
	regs   []*registration
	sticky map[string]receiver.Broadcast
	perms  map[string]struct{}
	closed bool
}

// registration is a single entry in the host's registration table.
type registration struct {
	rcv        receiver.Receiver
	filter     receiver.Filter
	permission string // required sender permission, empty means none
	scheduler  receiver.Scheduler
	exported   bool
}

// Option configures a MemoryHost.
type Option func(*MemoryHost)

// WithLogger configures structured logging for the host.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(h *MemoryHost) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithManifestPermissions declares the permissions the owning application
// holds, as a static manifest would.
func WithManifestPermissions(perms ...string) Option {
	return func(h *MemoryHost) {
		for _, p := range perms {
			h.perms[p] = struct{}{}
		}
	}
}

// NewMemoryHost creates an in-memory host for the given application package
// running at the given platform API level.
func NewMemoryHost(packageName string, apiLevel int, opts ...Option) *MemoryHost {
	h := &MemoryHost{
		pkg:      packageName,
		apiLevel: apiLevel,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		sticky:   make(map[string]receiver.Broadcast),
		perms:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PackageName returns the owning application package identifier.
func (h *MemoryHost) PackageName() string { return h.pkg }

// APILevel returns the platform API level the host reports.
func (h *MemoryHost) APILevel() int { return h.apiLevel }

// HasSelfPermission reports whether the owning application holds the named
// permission. Implements the receiver.PermissionChecker interface.
func (h *MemoryHost) HasSelfPermission(_ context.Context, permission string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.perms[permission]
	return ok
}

// Register is the basic registration entry point: unrestricted exposure, no
// sender permission, default delivery context.
func (h *MemoryHost) Register(ctx context.Context, r receiver.Receiver, f receiver.Filter) (*receiver.Broadcast, error) {
	return h.register(ctx, &registration{rcv: r, filter: f, exported: true})
}

// RegisterWithPermission registers with a required sender permission and an
// optional delivery scheduler. The registration stays reachable from any
// sender holding the permission, which is how not-exported semantics are
// emulated on platforms without native flag support.
func (h *MemoryHost) RegisterWithPermission(ctx context.Context, r receiver.Receiver, f receiver.Filter, permission string, s receiver.Scheduler) (*receiver.Broadcast, error) {
	return h.register(ctx, &registration{rcv: r, filter: f, permission: permission, scheduler: s, exported: true})
}

// RegisterWithFlags is the flag-aware registration entry point. The exposure
// flags are taken at face value; callers are expected to pass a normalized
// set (see receiver.Flags.Normalize).
func (h *MemoryHost) RegisterWithFlags(ctx context.Context, r receiver.Receiver, f receiver.Filter, permission string, s receiver.Scheduler, flags receiver.Flags) (*receiver.Broadcast, error) {
	return h.register(ctx, &registration{
		rcv:        r,
		filter:     f,
		permission: permission,
		scheduler:  s,
		exported:   !flags.Has(receiver.NotExported),
	})
}

func (h *MemoryHost) register(_ context.Context, reg *registration) (*receiver.Broadcast, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHostClosed
	}

	// A nil receiver queries the sticky state without registering.
	if reg.rcv != nil {
		h.regs = append(h.regs, reg)
		h.logger.Debug("receiver registered",
			"actions", reg.filter.Actions,
			"exported", reg.exported,
			"permission", reg.permission,
		)
	}

	return h.stickyFor(reg.filter), nil
}

// stickyFor returns the most recent retained broadcast matching the filter.
// Callers must hold at least a read lock.
func (h *MemoryHost) stickyFor(f receiver.Filter) *receiver.Broadcast {
	var latest *receiver.Broadcast
	for action, b := range h.sticky {
		if !f.Matches(action) {
			continue
		}
		if latest == nil || b.CreatedAt.After(latest.CreatedAt) {
			b := b
			latest = &b
		}
	}
	return latest
}

// Broadcast delivers b to every matching registration and returns the number
// of deliveries. By default the sender is the system, which reaches every
// registration; use FromPackage and WithSenderPermissions to simulate a
// foreign sender, and AsSticky to retain the broadcast for future
// registrants.
func (h *MemoryHost) Broadcast(ctx context.Context, b receiver.Broadcast, opts ...BroadcastOption) int {
	o := broadcastOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return 0
	}
	if o.sticky {
		h.sticky[b.Action] = b
	}
	targets := make([]*registration, 0, len(h.regs))
	for _, reg := range h.regs {
		if reg.filter.Matches(b.Action) && h.reachable(reg, o) {
			targets = append(targets, reg)
		}
	}
	h.mu.Unlock()

	for _, reg := range targets {
		rcv := reg.rcv
		if reg.scheduler != nil {
			reg.scheduler.Schedule(func() { rcv.OnReceive(ctx, b) })
		} else {
			rcv.OnReceive(ctx, b)
		}
	}

	h.logger.Debug("broadcast delivered",
		"action", b.Action,
		"sender", o.sender,
		"delivered", len(targets),
	)

	return len(targets)
}

// reachable reports whether a broadcast from the configured sender may be
// delivered to the registration. An empty sender is the system, which
// reaches everything and holds every permission.
func (h *MemoryHost) reachable(reg *registration, o broadcastOptions) bool {
	if o.sender == "" {
		return true
	}
	if !reg.exported && o.sender != h.pkg {
		return false
	}
	if reg.permission != "" && !o.holds(h, reg.permission) {
		return false
	}
	return true
}

// Unregister removes every registration made with the given receiver.
// Receivers registered as ReceiverFunc are matched by function identity.
func (h *MemoryHost) Unregister(r receiver.Receiver) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.regs[:0]
	for _, reg := range h.regs {
		if !sameReceiver(reg.rcv, r) {
			kept = append(kept, reg)
		}
	}
	h.regs = kept
}

// Close drops all registrations and sticky state. Subsequent registrations
// fail with ErrHostClosed; subsequent broadcasts deliver nothing.
func (h *MemoryHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.regs = nil
	h.sticky = make(map[string]receiver.Broadcast)
	return nil
}

// sameReceiver compares receivers by identity. Function-backed receivers are
// not comparable with ==, so they are matched by code pointer instead.
func sameReceiver(a, b receiver.Receiver) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Func || vb.Kind() == reflect.Func {
		return va.Kind() == vb.Kind() && va.Pointer() == vb.Pointer()
	}
	return a == b
}
