package configuration

import (
	"errors"
	"fmt"
	"github.com/clambin/vetinari/internal/version"
	"gopkg.in/alecthomas/kingpin.v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Build-time constants. These are deliberately not exposed as flags.
const (
	// SequenceLength is the number of seconds in each tick sequence. Must be a power of two.
	SequenceLength = 64
	// EnergiseTime is the time the coil is energized for each tick: 0xC000 cycles of a 1 MHz clock.
	EnergiseTime = 0xC000 * time.Microsecond
	// Seed is the initial value of the LFSR. Must not be zero.
	Seed uint16 = 0xACE1
	// TickInterval is the time between two tick slots
	TickInterval = time.Second / 4
)

type Configuration struct {
	Debug  bool
	Port   int
	Output OutputConfiguration
}

type OutputConfiguration struct {
	Mode     string
	GPIOPath string
	CoilOne  []int
	CoilTwo  []int
}

// OutputModes lists the supported coil outputs
var OutputModes = []string{"sysfs", "rpio", "log"}

func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration
	var coilOne, coilTwo string

	a := kingpin.New(filepath.Base(os.Args[0]), "vetinari")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("port", "Status & metrics listener port (0: disabled)").Default("8080").IntVar(&cfg.Port)
	a.Flag("output", "Coil output ("+strings.Join(OutputModes, ", ")+")").Short('o').Default("log").EnumVar(&cfg.Output.Mode, OutputModes...)
	a.Flag("gpio-path", "path name to the sysfs gpio directory").Default("/sys/class/gpio").StringVar(&cfg.Output.GPIOPath)
	a.Flag("coil-one", "comma-separated GPIO pins of the first coil pair").Default("17,18").StringVar(&coilOne)
	a.Flag("coil-two", "comma-separated GPIO pins of the second coil pair").Default("22,23").StringVar(&coilTwo)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}

	var err error
	if cfg.Output.CoilOne, err = parsePins(coilOne); err != nil {
		return cfg, fmt.Errorf("coil-one: %w", err)
	}
	if cfg.Output.CoilTwo, err = parsePins(coilTwo); err != nil {
		return cfg, fmt.Errorf("coil-two: %w", err)
	}
	if overlap(cfg.Output.CoilOne, cfg.Output.CoilTwo) {
		return cfg, errors.New("coil pairs share a pin")
	}
	return cfg, nil
}

func parsePins(arg string) ([]int, error) {
	var pins []int
	for _, field := range strings.Split(arg, ",") {
		pin, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid pin %q: %w", field, err)
		}
		if pin < 0 {
			return nil, fmt.Errorf("invalid pin %d", pin)
		}
		pins = append(pins, pin)
	}
	return pins, nil
}

func overlap(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
