package models

// MessageResponse is the body returned by the background for a routed
// message. Only the fields relevant to the message type are set.
type MessageResponse struct {
	Tags     []string    `json:"tags,omitempty"`
	LoggedIn *bool       `json:"loggedIn,omitempty"`
	Sync     *SyncResult `json:"sync,omitempty"`
	Auth     string      `json:"auth,omitempty"`
	Error    string      `json:"error,omitempty"`
}
