package output

import (
	"fmt"
	"github.com/clambin/vetinari/internal/coil"
	"github.com/stianeikeland/go-rpio/v4"
)

// gpioPin is the subset of rpio.Pin used by RPIO
type gpioPin interface {
	Output()
	High()
	Low()
}

// RPIO drives the coil through the Raspberry Pi's memory-mapped GPIO registers
type RPIO struct {
	pairs map[coil.Pair][]gpioPin
	close func() error
}

var _ Output = &RPIO{}

// NewRPIO maps the GPIO registers and configures the pins of both pairs as low outputs
func NewRPIO(coilOne, coilTwo []int) (*RPIO, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("rpio: %w", err)
	}
	makePins := func(numbers []int) []gpioPin {
		pins := make([]gpioPin, 0, len(numbers))
		for _, number := range numbers {
			pins = append(pins, rpio.Pin(number))
		}
		return pins
	}
	return newRPIO(makePins(coilOne), makePins(coilTwo), rpio.Close), nil
}

func newRPIO(coilOne, coilTwo []gpioPin, closer func() error) *RPIO {
	r := RPIO{
		pairs: map[coil.Pair][]gpioPin{
			coil.PairOne: coilOne,
			coil.PairTwo: coilTwo,
		},
		close: closer,
	}
	for _, pair := range coil.Pairs {
		for _, pin := range r.pairs[pair] {
			pin.Output()
			pin.Low()
		}
	}
	return &r
}

// SetPair drives all pins of the pair high (energized) or low
func (r *RPIO) SetPair(pair coil.Pair, energized bool) error {
	for _, pin := range r.pairs[pair] {
		if energized {
			pin.High()
		} else {
			pin.Low()
		}
	}
	return nil
}

// Close drives all pins low and unmaps the GPIO registers
func (r *RPIO) Close() error {
	for _, pair := range coil.Pairs {
		_ = r.SetPair(pair, false)
	}
	return r.close()
}
