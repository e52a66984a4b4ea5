// Package host provides an in-memory implementation of receiver.Host for
// tests, local development, and single-process applications.
//
// # Core Components
//
// MemoryHost keeps a registration table and a per-action sticky store and
// simulates the platform's exposure model: not-exported registrations are
// unreachable from foreign senders, and permission-gated registrations only
// receive broadcasts from senders holding the required permission. The
// owning application implicitly holds its own manifest permissions, which is
// exactly why the derived-permission emulation used by the receiver package
// on older platform tiers preserves self-delivery.
//
// SerialScheduler is a receiver.Scheduler backed by a single goroutine, for
// callers that need sequential delivery off the sender's goroutine.
//
// Config and NewFromConfig build a host from environment variables via the
// core/config package.
//
// # Basic Usage
//
//	import (
//		"context"
//
//		"github.com/dmitrymomot/broadcast/core/host"
//		"github.com/dmitrymomot/broadcast/core/receiver"
//	)
//
//	func main() {
//		h := host.NewMemoryHost("com.example.app", 33)
//		defer h.Close()
//
//		ctx := context.Background()
//		_, err := receiver.Register(ctx, h,
//			receiver.ReceiverFunc(func(ctx context.Context, b receiver.Broadcast) {
//				// handle the broadcast
//			}),
//			receiver.NewFilter("connectivity.changed"),
//			receiver.NotExported,
//		)
//		if err != nil {
//			panic(err)
//		}
//
//		h.Broadcast(ctx, receiver.NewBroadcast("connectivity.changed", nil))
//	}
//
// # Simulating Foreign Senders
//
// Broadcasts are attributed to the system by default, which reaches every
// registration. Use FromPackage to simulate another application:
//
//	delivered := h.Broadcast(ctx, b, host.FromPackage("com.other.app"))
//	// delivered == 0 for not-exported registrations
//
// Sticky broadcasts are retained per action and redelivered to future
// registrants:
//
//	h.Broadcast(ctx, b, host.AsSticky())
//	sticky, _ := receiver.Register(ctx, h, nil, receiver.NewFilter(b.Action), receiver.Exported)
package host
