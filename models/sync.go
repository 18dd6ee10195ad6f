package models

// SyncResult describes how one sync trigger was handled.
type SyncResult struct {
	// Skipped is set when another cycle was already in flight and the
	// trigger was dropped.
	Skipped bool `json:"skipped,omitempty"`

	// Changed is set when the remote marker differed and the bookmarks were
	// re-fetched and persisted.
	Changed bool `json:"changed,omitempty"`

	// Marker is the remote marker observed by the probe.
	Marker SyncMarker `json:"marker,omitempty"`

	// Count is the number of bookmarks persisted by a changed cycle.
	Count int `json:"count,omitempty"`
}
