package testutils

import (
	"errors"
	"github.com/clambin/vetinari/internal/coil"
	"sync"
)

// ErrOutputFailed is returned by a Recorder when Fail is set
var ErrOutputFailed = errors.New("output failed")

// Event records one call to SetPair
type Event struct {
	Pair      coil.Pair
	Energized bool
}

// Recorder is a coil.Output that records all state changes
type Recorder struct {
	Fail   bool
	events []Event
	lock   sync.Mutex
}

var _ coil.Output = &Recorder{}

func (r *Recorder) SetPair(pair coil.Pair, energized bool) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, Event{Pair: pair, Energized: energized})
	if r.Fail {
		return ErrOutputFailed
	}
	return nil
}

// Events returns all recorded calls
func (r *Recorder) Events() []Event {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Event(nil), r.events...)
}

// Pulses returns the pair of each energize call, in order
func (r *Recorder) Pulses() []coil.Pair {
	r.lock.Lock()
	defer r.lock.Unlock()
	var pulses []coil.Pair
	for _, e := range r.events {
		if e.Energized {
			pulses = append(pulses, e.Pair)
		}
	}
	return pulses
}
