package v1

// State represents the current state of a live session.
type State string

const (
	// StateInit is the state before Start.
	StateInit State = "Init"

	// StateConnecting indicates the WebSocket handshake is in progress.
	// Audio sent now is queued.
	StateConnecting State = "Connecting"

	// StateOpen indicates audio is streaming and results are arriving.
	StateOpen State = "Open"

	// StateClosing indicates CloseStream was sent and the server is flushing
	// the remaining results.
	StateClosing State = "Closing"

	// StateFinished indicates the server flushed everything and closed normally.
	StateFinished State = "Finished"

	// StateError indicates the session failed.
	StateError State = "Error"

	// StateCanceled indicates the caller canceled the session.
	StateCanceled State = "Canceled"

	// StateClosed indicates the server closed an open session without a
	// CloseStream from the client.
	StateClosed State = "Closed"
)

// IsActive reports whether a session is in progress.
func (s State) IsActive() bool {
	switch s {
	case StateConnecting, StateOpen, StateClosing:
		return true
	default:
		return false
	}
}

func (s State) IsInactive() bool {
	return !s.IsActive()
}

// IsTerminal reports whether the session ended; terminal states never
// transition except through a new Start.
func (s State) IsTerminal() bool {
	switch s {
	case StateFinished, StateError, StateCanceled, StateClosed:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	return string(s)
}
