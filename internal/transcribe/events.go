package transcribe

// EventType classifies messages emitted while a transcription runs.
type EventType string

const (
	EventTypeOutput    EventType = "output"
	EventTypeCompleted EventType = "completed"
	EventTypeFailed    EventType = "failed"
)

// Event is one message from a transcription run. Output events carry a
// single line from the child process; exactly one Completed or Failed
// event terminates every run and is always the last event delivered.
type Event struct {
	Type EventType

	// Line is set for output events. Stderr marks lines read from the
	// child's standard error stream.
	Line   string
	Stderr bool

	// Output is the full accumulated stdout text, set on Completed.
	Output string

	// Message describes the failure, set on Failed.
	Message string
}
