package tui

// stateChangedMsg is sent for every key the mirror applied.
type stateChangedMsg struct {
	key string
}

// stateClosedMsg is sent once the mirror stopped following the store.
type stateClosedMsg struct{}

type actionDoneMsg struct {
	status string
	err    error
}

type tagsSuggestedMsg struct {
	tags []string
	err  error
}

type clearStatusMsg struct{}
