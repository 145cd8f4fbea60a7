package output

import (
	"fmt"
	"github.com/clambin/vetinari/internal/coil"
	"github.com/clambin/vetinari/pkg/gpioberry"
	log "github.com/sirupsen/logrus"
)

// SysFS drives the coil through the Linux sysfs GPIO interface. Each pair drives all of its pins simultaneously.
type SysFS struct {
	pairs map[coil.Pair][]gpioberry.Pin
}

var _ Output = &SysFS{}

// NewSysFS exports the pins of both pairs, configures them as outputs and drives them low
func NewSysFS(root string, coilOne, coilTwo []int) (*SysFS, error) {
	s := SysFS{pairs: map[coil.Pair][]gpioberry.Pin{
		coil.PairOne: makePins(root, coilOne),
		coil.PairTwo: makePins(root, coilTwo),
	}}

	var exported []gpioberry.Pin
	for _, pair := range coil.Pairs {
		for _, pin := range s.pairs[pair] {
			if err := pin.Export(); err != nil {
				_ = release(exported)
				return nil, fmt.Errorf("export gpio%d: %w", pin.Number(), err)
			}
			exported = append(exported, pin)
			if err := configure(pin); err != nil {
				_ = release(exported)
				return nil, err
			}
		}
	}
	return &s, nil
}

func configure(pin gpioberry.Pin) error {
	if err := pin.SetDirection("out"); err != nil {
		return fmt.Errorf("gpio%d direction: %w", pin.Number(), err)
	}
	if err := pin.Set(false); err != nil {
		return fmt.Errorf("gpio%d: %w", pin.Number(), err)
	}
	return nil
}

// release drives the pins low and unexports them
func release(pins []gpioberry.Pin) (err error) {
	for _, pin := range pins {
		if err2 := pin.Set(false); err2 != nil && err == nil {
			err = err2
		}
		if err2 := pin.Unexport(); err2 != nil {
			log.WithError(err2).WithField("pin", pin.Number()).Warning("failed to unexport gpio pin")
		}
	}
	return err
}

func makePins(root string, numbers []int) []gpioberry.Pin {
	pins := make([]gpioberry.Pin, 0, len(numbers))
	for _, number := range numbers {
		pins = append(pins, gpioberry.New(root, number))
	}
	return pins
}

// SetPair drives all pins of the pair high (energized) or low
func (s *SysFS) SetPair(pair coil.Pair, energized bool) error {
	for _, pin := range s.pairs[pair] {
		if err := pin.Set(energized); err != nil {
			return fmt.Errorf("gpio%d: %w", pin.Number(), err)
		}
	}
	return nil
}

// Close drives all pins low and unexports them
func (s *SysFS) Close() error {
	var pins []gpioberry.Pin
	for _, pair := range coil.Pairs {
		pins = append(pins, s.pairs[pair]...)
	}
	return release(pins)
}
