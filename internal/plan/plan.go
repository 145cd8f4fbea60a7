package plan

import (
	"math/bits"
	"strings"
)

// Plan is a fixed-capacity bit-set. Each bit represents a tick slot: if set, the clock ticks in that slot.
type Plan struct {
	words []uint64
	size  int
}

// New returns an empty Plan holding size slots
func New(size int) *Plan {
	return &Plan{
		words: make([]uint64, (size+63)/64),
		size:  size,
	}
}

// Len returns the number of slots in the Plan
func (p *Plan) Len() int {
	return p.size
}

// Set marks the slot at index
func (p *Plan) Set(index int) {
	p.words[index>>6] |= 1 << uint(index&63)
}

// Test reports whether the slot at index is marked
func (p *Plan) Test(index int) bool {
	return p.words[index>>6]&(1<<uint(index&63)) != 0
}

// ClearAll unmarks all slots
func (p *Plan) ClearAll() {
	for i := range p.words {
		p.words[i] = 0
	}
}

// Count returns the number of marked slots
func (p *Plan) Count() int {
	var count int
	for _, w := range p.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// Slots returns the indexes of all marked slots, in ascending order
func (p *Plan) Slots() []int {
	slots := make([]int, 0, p.Count())
	for i := 0; i < p.size; i++ {
		if p.Test(i) {
			slots = append(slots, i)
		}
	}
	return slots
}

// String renders the plan as a string of 0s and 1s, first slot first
func (p *Plan) String() string {
	var b strings.Builder
	b.Grow(p.size)
	for i := 0; i < p.size; i++ {
		if p.Test(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
