package lfsr

import "errors"

// ErrZeroSeed is returned when a Generator is seeded with zero. Zero is a fixed point of the register:
// the generator would return zero forever.
var ErrZeroSeed = errors.New("lfsr: seed must be non-zero")

// Step advances a 16-bit Fibonacci LFSR by one position. The feedback bit is the XOR of bits 0, 2, 3 and 5 of the
// input. It is shifted in at bit 15.
//
// NOTE: the polynomial usually quoted for this register is x^16 + x^14 + x^13 + x^11 + 1. The taps used here are the
// ones the clock has always used (period 65535) and changing them changes every generated pattern.
func Step(state uint16) uint16 {
	bit := (state ^ (state >> 2) ^ (state >> 3) ^ (state >> 5)) & 1
	return (state >> 1) | (bit << 15)
}

// Generator holds the state of the LFSR between calls
type Generator struct {
	state uint16
}

// New creates a Generator with the provided seed
func New(seed uint16) (*Generator, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	return &Generator{state: seed}, nil
}

// Next advances the register and returns its new value
func (g *Generator) Next() uint16 {
	g.state = Step(g.state)
	return g.state
}

// State returns the current value of the register
func (g *Generator) State() uint16 {
	return g.state
}
