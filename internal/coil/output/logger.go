package output

import (
	"github.com/clambin/vetinari/internal/coil"
	log "github.com/sirupsen/logrus"
	"sync"
)

// Logger is a dry-run Output: it logs each change in coil state instead of driving hardware
type Logger struct {
	state map[coil.Pair]bool
	lock  sync.Mutex
}

var _ Output = &Logger{}

// SetPair logs the new state of the pair
func (l *Logger) SetPair(pair coil.Pair, energized bool) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.state == nil {
		l.state = make(map[coil.Pair]bool)
	}
	if l.state[pair] == energized {
		return nil
	}
	l.state[pair] = energized
	entry := log.WithField("pair", pair)
	if energized {
		entry.Info("tick")
	} else {
		entry.Debug("released")
	}
	return nil
}

// Energized reports whether the pair is currently energized
func (l *Logger) Energized(pair coil.Pair) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.state[pair]
}

func (l *Logger) Close() error {
	return nil
}
