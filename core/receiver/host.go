package receiver

import "context"

// PermissionChecker reports whether the current process holds a permission.
// On real platforms this is a read-only query against the process's static
// manifest; manifest permissions are stable for the process lifetime.
type PermissionChecker interface {
	// HasSelfPermission reports whether the current process holds the named
	// permission.
	HasSelfPermission(ctx context.Context, permission string) bool
}

// Host is the platform collaborator a registration is dispatched to. It
// exposes the three generations of the platform's registration entry points;
// which ones can express a given exposure policy natively depends on the
// reported API level (see TierFor).
//
// All three entry points return the most recent retained (sticky) broadcast
// matching the filter, or nil if there is none. A nil Receiver queries the
// sticky state without registering a callback.
type Host interface {
	PermissionChecker

	// PackageName returns the identifier of the owning application package.
	PackageName() string

	// APILevel returns the platform API level the host is running at.
	APILevel() int

	// Register is the basic entry point: no sender permission requirement,
	// default delivery context, no exposure control.
	Register(ctx context.Context, r Receiver, f Filter) (*Broadcast, error)

	// RegisterWithPermission registers with a required sender permission and
	// an optional delivery scheduler. An empty permission means no
	// requirement; a nil scheduler means the host default.
	RegisterWithPermission(ctx context.Context, r Receiver, f Filter, permission string, s Scheduler) (*Broadcast, error)

	// RegisterWithFlags is the fully capable entry point, accepting a sender
	// permission, a delivery scheduler, and exposure flags in one call. Only
	// hosts at TierMid and above support it, and only TierCurrent hosts
	// honor the full flag set.
	RegisterWithFlags(ctx context.Context, r Receiver, f Filter, permission string, s Scheduler, flags Flags) (*Broadcast, error)
}
