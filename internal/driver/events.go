package driver

// Status describes where a file is in the formatting run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event notifies observers (the progress UI) about one file's status change.
type Event struct {
	File    string
	Status  Status
	Changed bool
}

func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
