package models

// Keys of the persisted state. All contexts share this flat namespace.
const (
	KeyToken          = "token"
	KeyBookmarks      = "bookmarks"
	KeyUpdateTime     = "updateTime"
	KeyDefaultPrivate = "defaultPrivate"
	KeyPinboardError  = "pinboardError"
)

// StateKeys lists every persisted key in a stable order.
var StateKeys = []string{
	KeyToken,
	KeyBookmarks,
	KeyUpdateTime,
	KeyDefaultPrivate,
	KeyPinboardError,
}

// SyncMarker is the remote "last updated" value. It is only compared for
// equality; a fetch is needed iff the probed marker differs from the stored
// one.
type SyncMarker string

// State is the decoded view of the persisted keys as seen by one context.
type State struct {
	Token          Credential `json:"token"`
	Bookmarks      []Bookmark `json:"bookmarks"`
	UpdateTime     SyncMarker `json:"updateTime"`
	DefaultPrivate bool       `json:"defaultPrivate"`
	PinboardError  string     `json:"pinboardError"`
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	out := s
	if s.Bookmarks != nil {
		out.Bookmarks = make([]Bookmark, len(s.Bookmarks))
		for i, b := range s.Bookmarks {
			b.Tags = append([]string(nil), b.Tags...)
			out.Bookmarks[i] = b
		}
	}

	return out
}
