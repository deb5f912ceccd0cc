package audit

import "log"

type Event struct {
	ActorID   *string
	ActorRole string
	Action    string
	Entity    string
	EntityID  *string
	Metadata  any
}

// Recorder persists one event; the gorm-backed Logger is the production
// implementation.
type Recorder interface {
	Record(ev Event) error
}

type Dispatcher struct {
	recorder Recorder
	queue    chan Event
}

func NewDispatcher(recorder Recorder) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// full queue must never block or fail a request
		log.Println("audit queue full, dropping event")
	}
}
