// Package receiver provides version-tolerant registration of broadcast
// receivers against a platform host, so calling code can request an exposure
// policy once instead of branching on the host's API level at every call
// site.
//
// # The Problem
//
// Platforms grew their registration surface over three generations: the
// oldest entry point takes just a receiver and a filter, a later one added a
// required sender permission and a delivery scheduler, and the newest takes
// exposure flags natively. An application that wants a not-exported receiver
// (one that only the system and the application itself can reach) has to
// pick the right entry point for the running platform and, on older tiers,
// emulate non-export with a per-application permission. This package
// centralizes that translation.
//
// # Core Components
//
// Flags declares the requested exposure policy: Exported, NotExported, and
// VisibleToInstantApps. Normalize validates the set and resolves implied
// bits before any host call is made.
//
// Host is the platform collaborator with the three versioned entry points.
// TierFor classifies its reported API level into TierLegacy, TierMid, or
// TierCurrent, which selects the dispatch strategy.
//
// Register and RegisterWith perform the registration. Both are synchronous,
// stateless, and safe for concurrent use; they either fully succeed,
// returning the first sticky broadcast matching the filter (or nil), or
// fail before the host's registration entry point is invoked.
//
// # Basic Usage
//
//	import (
//		"context"
//
//		"github.com/dmitrymomot/broadcast/core/receiver"
//	)
//
//	func watchConnectivity(ctx context.Context, h receiver.Host) error {
//		_, err := receiver.Register(ctx, h,
//			receiver.ReceiverFunc(func(ctx context.Context, b receiver.Broadcast) {
//				// react to the broadcast
//			}),
//			receiver.NewFilter("connectivity.changed"),
//			receiver.NotExported,
//		)
//		return err
//	}
//
// # Not-Exported on Older Platforms
//
// On platforms below TierCurrent, not-exported registrations without an
// explicit sender permission are emulated by requiring senders to hold
// `<package>` + NotExportedPermissionSuffix. The application must declare
// that permission in its static manifest; if the current process does not
// hold it, registration fails with *PermissionRequiredError carrying the
// exact string to declare:
//
//	_, err := receiver.Register(ctx, h, rcv, filter, receiver.NotExported)
//	var perr *receiver.PermissionRequiredError
//	if errors.As(err, &perr) {
//		log.Fatalf("add %s to the application manifest", perr.Permission)
//	}
//
// # Degraded Legacy Path
//
// TierLegacy platforms have no exposure control for exported registrations:
// requesting Exported there drops the flags and degrades to the unrestricted
// registration form. This mirrors the platform's own limitation and is
// intentional, not a defect of the translation.
//
// # Sticky Queries
//
// Passing a nil Receiver queries the retained sticky broadcast for a filter
// without registering a callback:
//
//	sticky, err := receiver.Register(ctx, h, nil,
//		receiver.NewFilter("battery.changed"), receiver.Exported)
package receiver
