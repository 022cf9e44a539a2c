package resolver

// State is the externally visible resolution state of one Resolver.
type State int

const (
	// StateUnresolved means no lookup has produced a non-empty collection yet.
	StateUnresolved State = iota
	// StateMemoryCached means the collection is held in memory for the rest of the Resolver's life.
	StateMemoryCached
)

func (s State) String() string {
	switch s {
	case StateMemoryCached:
		return "memory_cached"
	default:
		return "unresolved"
	}
}

// Resolution tiers, in the order they are consulted.
const (
	TierMemory = "memory"
	TierDisk   = "disk"
	TierRemote = "remote"
)
