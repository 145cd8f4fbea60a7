package output

import (
	"errors"
	"fmt"
	"github.com/clambin/vetinari/internal/coil"
	"github.com/clambin/vetinari/internal/configuration"
)

// ErrInvalidOutput is returned when the configured output mode is not supported
var ErrInvalidOutput = errors.New("invalid output")

// Output is a coil.Output that holds hardware resources, which must be released when done
type Output interface {
	coil.Output
	Close() error
}

// New creates the Output for the configured mode
func New(cfg configuration.OutputConfiguration) (Output, error) {
	switch cfg.Mode {
	case "sysfs":
		return NewSysFS(cfg.GPIOPath, cfg.CoilOne, cfg.CoilTwo)
	case "rpio":
		return NewRPIO(cfg.CoilOne, cfg.CoilTwo)
	case "log":
		return &Logger{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidOutput, cfg.Mode)
	}
}
