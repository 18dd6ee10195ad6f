package service

// SyncState is the phase of a sync cycle.
type SyncState int32

const (
	SyncIdle SyncState = iota
	SyncProbing
	SyncFetching
	SyncPersisting
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncProbing:
		return "probing"
	case SyncFetching:
		return "fetching"
	case SyncPersisting:
		return "persisting"
	}
	return "unknown"
}

// AuthOutcome tells how an authentication request ended.
type AuthOutcome string

const (
	AuthNotLoggedIn          AuthOutcome = "notLoggedIn"
	AuthAlreadyAuthenticated AuthOutcome = "alreadyAuthenticated"
	AuthTokenHarvested       AuthOutcome = "tokenHarvested"
)
