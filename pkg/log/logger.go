package log

// Logger receives trace events.
type Logger interface {
	// Log records an event. Implementations must be safe for concurrent use.
	Log(event Event)
}

// NoopLogger discards all events. Its zero value is ready to use.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
