package coil

import (
	"context"
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

// Pair identifies one of the two H-bridge output pairs driving the clock coil
type Pair int

const (
	PairOne Pair = iota
	PairTwo
)

// Pairs lists all coil pairs
var Pairs = []Pair{PairOne, PairTwo}

func (p Pair) String() string {
	if p == PairOne {
		return "one"
	}
	return "two"
}

// Output interface energizes or de-energizes a coil pair. It abstracts the hardware (or a simulation of it).
type Output interface {
	SetPair(pair Pair, energized bool) error
}

// Driver pulses the clock coil. Each pulse uses the opposite pair of the previous one, so the mechanism is driven
// with alternating polarity.
type Driver struct {
	output   Output
	energize time.Duration
	polarity Pair
	sleep    func(ctx context.Context, d time.Duration)
	lock     sync.Mutex
}

// NewDriver creates a Driver that holds each pulse for the energize duration
func NewDriver(output Output, energize time.Duration) *Driver {
	return &Driver{
		output:   output,
		energize: energize,
		polarity: PairOne,
		sleep:    sleepContext,
	}
}

// Pulse energizes the current pair, waits for the energize duration and de-energizes the pair again.
// The polarity is flipped even if the output fails: the next pulse always uses the other pair.
func (d *Driver) Pulse(ctx context.Context) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	pair := d.polarity
	d.polarity = 1 - d.polarity

	err := d.output.SetPair(pair, true)
	if err == nil {
		d.sleep(ctx, d.energize)
	}
	if err2 := d.output.SetPair(pair, false); err == nil {
		err = err2
	}
	log.WithError(err).WithField("pair", pair).Debug("pulse")
	return err
}

// Polarity returns the pair the next pulse will energize
func (d *Driver) Polarity() Pair {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.polarity
}

// Release de-energizes both pairs
func (d *Driver) Release() (err error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	for _, pair := range Pairs {
		if err2 := d.output.SetPair(pair, false); err2 != nil && err == nil {
			err = err2
		}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
