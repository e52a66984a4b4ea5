package host

// broadcastOptions captures the sender identity and delivery behavior of a
// single Broadcast call.
type broadcastOptions struct {
	sender      string
	sticky      bool
	permissions map[string]struct{}
}

// BroadcastOption configures a single Broadcast call.
type BroadcastOption func(*broadcastOptions)

// FromPackage attributes the broadcast to the given sender package instead
// of the system. Not-exported registrations only receive broadcasts from the
// system or the owning package.
func FromPackage(pkg string) BroadcastOption {
	return func(o *broadcastOptions) {
		o.sender = pkg
	}
}

// AsSticky retains the broadcast so it is redelivered to future registrants
// matching its action. The latest sticky broadcast per action wins.
func AsSticky() BroadcastOption {
	return func(o *broadcastOptions) {
		o.sticky = true
	}
}

// WithSenderPermissions declares the permissions the sender holds, used to
// satisfy permission-gated registrations.
func WithSenderPermissions(perms ...string) BroadcastOption {
	return func(o *broadcastOptions) {
		if o.permissions == nil {
			o.permissions = make(map[string]struct{}, len(perms))
		}
		for _, p := range perms {
			o.permissions[p] = struct{}{}
		}
	}
}

// holds reports whether the sender holds the given permission. The owning
// application implicitly holds its own manifest permissions.
func (o broadcastOptions) holds(h *MemoryHost, permission string) bool {
	if o.sender == h.pkg {
		if _, ok := h.perms[permission]; ok {
			return true
		}
	}
	_, ok := o.permissions[permission]
	return ok
}
