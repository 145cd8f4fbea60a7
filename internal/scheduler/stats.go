package scheduler

// Stats holds the state of the Scheduler, as reported by the /stats endpoint
type Stats struct {
	Length      int    `json:"length"`
	Capacity    int    `json:"capacity"`
	Slot        int    `json:"slot"`
	Ticks       int    `json:"ticks"`
	Pulses      int    `json:"pulses"`
	PulseErrors int    `json:"pulse_errors"`
	Cycles      int    `json:"cycles"`
	State       uint16 `json:"lfsr_state"`
	Plan        string `json:"plan"`
}

// Stats returns the current state of the Scheduler
func (s *Scheduler) Stats() Stats {
	s.lock.RLock()
	defer s.lock.RUnlock()
	stats := s.stats
	stats.Length = s.planner.Length()
	stats.Capacity = s.planner.Capacity()
	stats.Slot = s.counter
	stats.State = s.gen.State()
	stats.Plan = s.plan.String()
	return stats
}
