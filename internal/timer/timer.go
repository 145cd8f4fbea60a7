package timer

import (
	"sync"
	"time"
)

// Source delivers wake events at a fixed cadence
type Source interface {
	C() <-chan time.Time
	Stop()
}

// Ticker is a Source backed by a time.Ticker
type Ticker struct {
	ticker *time.Ticker
}

var _ Source = &Ticker{}

// NewTicker returns a Source that fires every interval
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{ticker: time.NewTicker(interval)}
}

func (t *Ticker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *Ticker) Stop() {
	t.ticker.Stop()
}

// Manual is a Source that only fires when told to. Fire blocks until the event has been received,
// so no event is ever dropped.
type Manual struct {
	ch   chan time.Time
	once sync.Once
}

var _ Source = &Manual{}

// NewManual returns a new Manual source
func NewManual() *Manual {
	return &Manual{ch: make(chan time.Time)}
}

func (m *Manual) C() <-chan time.Time {
	return m.ch
}

// Fire delivers count wake events
func (m *Manual) Fire(count int) {
	for i := 0; i < count; i++ {
		m.ch <- time.Now()
	}
}

// Stop closes the event channel. Any receiver sees the source as exhausted.
func (m *Manual) Stop() {
	m.once.Do(func() { close(m.ch) })
}
