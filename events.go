package paginate

// Observer receives request lifecycle events. Implementations must be safe
// for concurrent use when requests run from multiple goroutines.
type Observer interface {
	On(eventData EventData)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(EventData)

// On implements Observer.
func (f ObserverFunc) On(eventData EventData) {
	if f != nil {
		f(eventData)
	}
}

// Event represents a request lifecycle event type.
type Event int

const (
	// EventRequest is emitted after SetLoading, before LoadOptions is called.
	EventRequest Event = iota
	// EventSkip is emitted when a request is suppressed because the key is
	// already loading or has no more pages.
	EventSkip
	// EventSuccess is emitted after a page was merged into the cache.
	EventSuccess
	// EventFailure is emitted when LoadOptions failed and the key was cleaned.
	EventFailure
	// EventDiscard is emitted when a debounced request was dropped because
	// the input value moved on.
	EventDiscard
)

func (e Event) String() string {
	switch e {
	case EventRequest:
		return "request"
	case EventSkip:
		return "skip"
	case EventSuccess:
		return "success"
	case EventFailure:
		return "failure"
	case EventDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// EventData carries the details of a lifecycle event.
type EventData struct {
	Event      Event
	InputValue string
	Reason     Reason
	// Options is the number of options cached for the key after the event.
	Options int
	Err     error
}
