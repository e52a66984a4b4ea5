package receiver

// API levels at which the platform's registration surface gained
// capabilities: flag-aware registration arrived at level 26, native
// not-exported enforcement at level 33.
const (
	apiLevelMid     = 26
	apiLevelCurrent = 33
)

// Tier classifies a platform API level by which registration entry points
// can express exposure policies natively.
type Tier int

const (
	// TierLegacy platforms have no flag-based exposure control at all.
	TierLegacy Tier = iota

	// TierMid platforms accept exposure flags but only honor instant-app
	// visibility; not-exported must be emulated with a permission.
	TierMid

	// TierCurrent platforms accept and enforce the full flag set natively.
	TierCurrent
)

// TierFor returns the capability tier for a platform API level.
func TierFor(apiLevel int) Tier {
	switch {
	case apiLevel >= apiLevelCurrent:
		return TierCurrent
	case apiLevel >= apiLevelMid:
		return TierMid
	default:
		return TierLegacy
	}
}

// String implements the fmt.Stringer interface.
func (t Tier) String() string {
	switch t {
	case TierLegacy:
		return "legacy"
	case TierMid:
		return "mid"
	case TierCurrent:
		return "current"
	default:
		return "unknown"
	}
}
