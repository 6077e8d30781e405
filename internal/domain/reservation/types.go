package reservation

type State string

const (
	StateHeld      State = "held"
	StateConfirmed State = "confirmed"
	StateCancelled State = "cancelled"
	StateExpired   State = "expired"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateHeld, StateConfirmed, StateCancelled, StateExpired:
		return true
	default:
		return false
	}
}

func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateCancelled || s == StateExpired
}

type EventType string

const (
	EventCreated   EventType = "created"
	EventConfirmed EventType = "confirmed"
	EventCancelled EventType = "cancelled"
	EventExpired   EventType = "expired"
)

func (t EventType) String() string {
	return string(t)
}

func eventFor(s State) EventType {
	switch s {
	case StateConfirmed:
		return EventConfirmed
	case StateCancelled:
		return EventCancelled
	case StateExpired:
		return EventExpired
	default:
		return EventCreated
	}
}
