package receiver

import "fmt"

// Flags controls the exposure of a registered receiver: whether broadcasts
// originating outside the owning application may reach it, and whether it is
// visible to instant-app execution contexts.
type Flags uint32

const (
	// VisibleToInstantApps allows the receiver to receive broadcasts from
	// instant apps. Implies Exported; cannot be combined with NotExported.
	VisibleToInstantApps Flags = 0x1

	// Exported allows the receiver to receive broadcasts from other
	// applications, equivalent to a statically declared receiver with
	// exported=true.
	Exported Flags = 0x2

	// NotExported restricts the receiver to broadcasts from the system and
	// the owning application, equivalent to exported=false.
	NotExported Flags = 0x4
)

// Has reports whether all bits of other are set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Normalize validates the flag set and resolves implied bits.
//
// VisibleToInstantApps implies Exported and conflicts with NotExported.
// After implication, exactly one of Exported or NotExported must be set.
// Normalize is idempotent: applying it to an already normalized set returns
// the set unchanged.
func (f Flags) Normalize() (Flags, error) {
	if f.Has(VisibleToInstantApps) && f.Has(NotExported) {
		return 0, fmt.Errorf("%w: cannot combine VisibleToInstantApps with NotExported", ErrConflictingFlags)
	}

	if f.Has(VisibleToInstantApps) {
		f |= Exported
	}

	if !f.Has(Exported) && !f.Has(NotExported) {
		return 0, fmt.Errorf("%w: one of Exported or NotExported is required", ErrMissingExposure)
	}

	if f.Has(Exported) && f.Has(NotExported) {
		return 0, fmt.Errorf("%w: cannot combine Exported with NotExported", ErrConflictingFlags)
	}

	return f, nil
}
