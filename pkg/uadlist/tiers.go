package uadlist

// Removal tiers in the current list format. The first two legacy names
// were renamed when the format changed: Recommended became Safe and
// Expert became Disruptive.
const (
	RemovalSafe       = "Safe"
	RemovalAdvanced   = "Advanced"
	RemovalDisruptive = "Disruptive"
	RemovalUnsafe     = "Unsafe"
	RemovalUnlisted   = "Unlisted"
)

// RemovalRenames maps legacy removal tiers to their current names. Tiers
// not present here kept their name across the format change.
var RemovalRenames = map[string]string{
	"Recommended": RemovalSafe,
	"Expert":      RemovalDisruptive,
}

// LegacyFields are per-record fields dropped by the migration.
var LegacyFields = []string{"neededBy", "labels", "dependencies"}

// KnownRemovals is the set of valid removal tiers after migration.
var KnownRemovals = []string{
	RemovalSafe,
	RemovalAdvanced,
	RemovalDisruptive,
	RemovalUnsafe,
	RemovalUnlisted,
}

// KnownLists is the set of valid values for a record's "list" field.
var KnownLists = []string{"aosp", "carrier", "google", "misc", "oem", "pending", "unlisted"}
