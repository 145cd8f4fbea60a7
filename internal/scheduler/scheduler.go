package scheduler

import (
	"context"
	"errors"
	"github.com/clambin/vetinari/internal/coil"
	"github.com/clambin/vetinari/internal/lfsr"
	"github.com/clambin/vetinari/internal/plan"
	"github.com/clambin/vetinari/internal/timer"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"sync"
)

// ErrEmptySequence is returned when the planner does not schedule any ticks
var ErrEmptySequence = errors.New("sequence length must be positive")

// Driver pulses the clock coil
type Driver interface {
	Pulse(ctx context.Context) error
	Polarity() coil.Pair
	Release() error
}

// Scheduler consumes a Plan, one slot per wake event. When it reaches the end of the Plan, it generates a new one.
//
// OnTick and Run must be called from a single goroutine. Stats may be called concurrently.
type Scheduler struct {
	planner *plan.Planner
	gen     *lfsr.Generator
	driver  Driver
	metrics *metrics
	plan    *plan.Plan
	counter int
	stats   Stats
	lock    sync.RWMutex
}

var _ prometheus.Collector = &Scheduler{}

// New creates a Scheduler and fills its first Plan
func New(planner *plan.Planner, gen *lfsr.Generator, driver Driver) (*Scheduler, error) {
	if planner.Length() == 0 {
		return nil, ErrEmptySequence
	}
	s := Scheduler{
		planner: planner,
		gen:     gen,
		driver:  driver,
		metrics: newMetrics(),
		plan:    planner.Fill(gen),
	}
	log.WithField("plan", s.plan).Debug("initial plan")
	return &s, nil
}

// Run calls OnTick for every event received from source, until ctx is cancelled or the source is stopped.
// When Run returns, the coil is de-energized.
func (s *Scheduler) Run(ctx context.Context, source timer.Source) error {
	log.Info("scheduler started")
	defer func() {
		if err := s.driver.Release(); err != nil {
			log.WithError(err).Warning("failed to release coil")
		}
		log.Info("scheduler stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-source.C():
			if !ok {
				return nil
			}
			s.OnTick(ctx)
		}
	}
}

// OnTick handles one wake event: it pulses the coil if the current slot is set, advances to the next slot and,
// at the end of the Plan, generates a new one.
func (s *Scheduler) OnTick(ctx context.Context) {
	// only this goroutine modifies the plan & counter, so no lock is needed to read them
	fire := s.plan.Test(s.counter)
	var failed bool
	if fire {
		pair := s.driver.Polarity()
		if err := s.driver.Pulse(ctx); err != nil {
			log.WithError(err).WithField("pair", pair).Warning("failed to pulse coil")
			s.metrics.pulseErrors.Inc()
			failed = true
		}
		s.metrics.pulses.WithLabelValues(pair.String()).Inc()
	}
	s.metrics.ticks.Inc()

	s.lock.Lock()
	defer s.lock.Unlock()
	s.stats.Ticks++
	if fire {
		s.stats.Pulses++
	}
	if failed {
		s.stats.PulseErrors++
	}
	s.counter++
	if s.counter == s.plan.Len() {
		s.counter = 0
		s.planner.FillInto(s.plan, s.gen)
		s.stats.Cycles++
		s.metrics.regenerations.Inc()
		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithFields(log.Fields{"plan": s.plan, "slots": s.plan.Slots()}).Debug("new plan")
		}
	}
}

// Describe implements the prometheus.Collector interface
func (s *Scheduler) Describe(ch chan<- *prometheus.Desc) {
	s.metrics.Describe(ch)
}

// Collect implements the prometheus.Collector interface
func (s *Scheduler) Collect(ch chan<- prometheus.Metric) {
	s.metrics.Collect(ch)
}
