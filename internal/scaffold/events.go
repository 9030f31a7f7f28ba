package scaffold

// Status says what Apply did for one entry.
type Status uint8

const (
	// StatusCreated means the entry was created by this run.
	StatusCreated Status = iota
	// StatusExists means the entry was already on disk and was left as-is.
	StatusExists
	// StatusPlanned means the entry would be created (dry-run).
	StatusPlanned
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusExists:
		return "exists"
	case StatusPlanned:
		return "planned"
	}
	return "unknown"
}

// Event is one materialization step, published as it happens.
type Event struct {
	Path   string // absolute path of the entry
	Dir    bool
	Status Status
}

// Sink receives materialization events.
type Sink interface {
	Publish(Event)
}

// ChannelSink forwards events into a channel (TUI consumption).
type ChannelSink struct{ Ch chan<- Event }

func (s ChannelSink) Publish(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Publish(ev Event) {
	if f != nil {
		f(ev)
	}
}
