package scheduler

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	ticks         prometheus.Counter
	pulses        *prometheus.CounterVec
	pulseErrors   prometheus.Counter
	regenerations prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vetinari_ticks_total",
			Help: "Number of processed tick slots",
		}),
		pulses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vetinari_pulses_total",
			Help: "Number of coil pulses, by coil pair",
		}, []string{"pair"}),
		pulseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vetinari_pulse_errors_total",
			Help: "Number of coil pulses that failed",
		}),
		regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vetinari_plan_regenerations_total",
			Help: "Number of generated tick plans, after the initial one",
		}),
	}
}

func (m *metrics) Describe(ch chan<- *prometheus.Desc) {
	m.ticks.Describe(ch)
	m.pulses.Describe(ch)
	m.pulseErrors.Describe(ch)
	m.regenerations.Describe(ch)
}

func (m *metrics) Collect(ch chan<- prometheus.Metric) {
	m.ticks.Collect(ch)
	m.pulses.Collect(ch)
	m.pulseErrors.Collect(ch)
	m.regenerations.Collect(ch)
}
