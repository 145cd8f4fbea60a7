package plan

import (
	"errors"
	"fmt"
	"github.com/clambin/vetinari/internal/lfsr"
)

// SlotsPerSecond is the number of tick slots per second of real time
const SlotsPerSecond = 4

// MaxSequenceLength is the longest supported sequence. Index 0 of a plan is reached through an LFSR value whose low
// bits are all zero: with a capacity of 65536 slots that would be the (unreachable) value 0.
const MaxSequenceLength = 8192

// ErrInvalidLength is returned when the sequence length is out of range
var ErrInvalidLength = errors.New("invalid sequence length")

// Planner fills Plans with a fixed number of ticks at pseudo-random slots
type Planner struct {
	length   int
	capacity int
	mask     uint16
}

// NewPlanner creates a Planner for sequences of length seconds. Each plan holds SlotsPerSecond * length slots,
// of which length are set.
//
// If length is a power of two, a candidate slot is selected by masking the LFSR value. Otherwise, a modulo is used.
func NewPlanner(length int) (*Planner, error) {
	if length < 0 || length > MaxSequenceLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	p := Planner{
		length:   length,
		capacity: SlotsPerSecond * length,
	}
	if length > 0 && length&(length-1) == 0 {
		p.mask = uint16(p.capacity - 1)
	}
	return &p, nil
}

// Length returns the number of ticks in each plan
func (p *Planner) Length() int {
	return p.length
}

// Capacity returns the number of slots in each plan
func (p *Planner) Capacity() int {
	return p.capacity
}

// Fill returns a new Plan, filled using the provided generator
func (p *Planner) Fill(gen *lfsr.Generator) *Plan {
	pl := New(p.capacity)
	p.FillInto(pl, gen)
	return pl
}

// FillInto clears the plan and marks exactly Length() slots. Slots are drawn from the generator.
// If a slot is already marked, the value is discarded and a new one is drawn.
func (p *Planner) FillInto(pl *Plan, gen *lfsr.Generator) {
	pl.ClearAll()
	for remaining := p.length; remaining > 0; {
		index := p.index(gen.Next())
		if !pl.Test(index) {
			pl.Set(index)
			remaining--
		}
	}
}

func (p *Planner) index(value uint16) int {
	if p.mask != 0 {
		return int(value & p.mask)
	}
	return int(value) % p.capacity
}
