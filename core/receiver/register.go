package receiver

import "context"

// NotExportedPermissionSuffix, appended to the application package name,
// forms the permission that emulates not-exported registrations on platforms
// without native flag support. Applications targeting those platforms must
// declare `<package>` + NotExportedPermissionSuffix in their manifest.
const NotExportedPermissionSuffix = ".DYNAMIC_RECEIVER_NOT_EXPORTED_PERMISSION_SUFFIX"

// Register registers a receiver for broadcasts matching the filter, with no
// required sender permission and the host's default delivery context. It is
// the convenience form of RegisterWith.
//
// Flags must contain exactly one of Exported or NotExported after
// normalization; see Flags.Normalize.
//
// Example:
//
//	sticky, err := receiver.Register(ctx, host,
//	    receiver.ReceiverFunc(onConnectivity),
//	    receiver.NewFilter("connectivity.changed"),
//	    receiver.NotExported,
//	)
func Register(ctx context.Context, host Host, r Receiver, f Filter, flags Flags) (*Broadcast, error) {
	return RegisterWith(ctx, host, r, f, "", nil, flags)
}

// RegisterWith registers a receiver for broadcasts matching the filter. The
// broadcastPermission, when non-empty, names a permission a sender must hold
// for its broadcasts to be delivered; the scheduler, when non-nil, selects
// the delivery context. Both are forwarded to the host opaquely.
//
// The requested exposure policy is translated to whatever the host's API
// level can express: current platforms take the flags natively, older ones
// fall back to a derived per-application permission, and the oldest drop
// exported-visibility flags entirely because no equivalent control exists
// there. Registration either fully succeeds, returning the first matching
// sticky broadcast (or nil), or fails before the host's registration entry
// point is invoked.
//
// A nil Receiver queries the sticky state without registering a callback.
func RegisterWith(ctx context.Context, host Host, r Receiver, f Filter, broadcastPermission string, scheduler Scheduler, flags Flags) (*Broadcast, error) {
	flags, err := flags.Normalize()
	if err != nil {
		return nil, err
	}

	switch TierFor(host.APILevel()) {
	case TierCurrent:
		return host.RegisterWithFlags(ctx, r, f, broadcastPermission, scheduler, flags)
	case TierMid:
		return registerMid(ctx, host, r, f, broadcastPermission, scheduler, flags)
	default:
		return registerLegacy(ctx, host, r, f, broadcastPermission, scheduler, flags)
	}
}

// registerMid handles platforms that accept exposure flags but cannot
// express not-exported natively. Not-exported registrations without an
// explicit permission are emulated with the derived permission; everything
// else goes through the flag-aware entry point with the flags masked to the
// supported subset.
func registerMid(ctx context.Context, host Host, r Receiver, f Filter, broadcastPermission string, scheduler Scheduler, flags Flags) (*Broadcast, error) {
	if flags.Has(NotExported) && broadcastPermission == "" {
		permission, err := obtainAndCheckReceiverPermission(ctx, host)
		if err != nil {
			return nil, err
		}
		// Not-exported receivers are also kept invisible to instant apps.
		return host.RegisterWithPermission(ctx, r, f, permission, scheduler)
	}
	return host.RegisterWithFlags(ctx, r, f, broadcastPermission, scheduler, flags&VisibleToInstantApps)
}

// registerLegacy handles platforms without any flag-based exposure control.
// Not-exported is emulated with the derived permission; exported requests
// degrade to the unrestricted registration forms with the flags dropped,
// mirroring the platform's own limitation.
func registerLegacy(ctx context.Context, host Host, r Receiver, f Filter, broadcastPermission string, scheduler Scheduler, flags Flags) (*Broadcast, error) {
	if flags.Has(NotExported) && broadcastPermission == "" {
		permission, err := obtainAndCheckReceiverPermission(ctx, host)
		if err != nil {
			return nil, err
		}
		return host.RegisterWithPermission(ctx, r, f, permission, scheduler)
	}
	if broadcastPermission == "" && scheduler == nil {
		return host.Register(ctx, r, f)
	}
	return host.RegisterWithPermission(ctx, r, f, broadcastPermission, scheduler)
}

// obtainAndCheckReceiverPermission derives the per-application permission
// that emulates not-exported registrations and asserts the current process
// holds it, so the application can still receive its own broadcasts. The
// check is read-only and precedes the registration call; manifest
// permissions are stable for the process lifetime, so the gap between check
// and use is not observable in practice.
func obtainAndCheckReceiverPermission(ctx context.Context, host Host) (string, error) {
	permission := host.PackageName() + NotExportedPermissionSuffix
	if !host.HasSelfPermission(ctx, permission) {
		return "", &PermissionRequiredError{Permission: permission}
	}
	return permission, nil
}
