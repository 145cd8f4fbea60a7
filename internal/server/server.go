package server

import (
	"context"
	"encoding/json"
	"github.com/clambin/gotools/metrics"
	"github.com/clambin/vetinari/internal/scheduler"
	log "github.com/sirupsen/logrus"
	"net/http"
	"time"
)

// StatsReporter returns the current state of the scheduler
type StatsReporter interface {
	Stats() scheduler.Stats
}

// Server exposes the scheduler's state on /stats and its prometheus metrics on /metrics
type Server struct {
	Reporter   StatsReporter
	HTTPServer *metrics.Server
}

// New creates a new Server. If port is zero, a free port is allocated.
func New(port int, reporter StatsReporter) *Server {
	s := &Server{Reporter: reporter}
	s.HTTPServer = metrics.NewServerWithHandlers(port, []metrics.Handler{
		{
			Path:    "/stats",
			Handler: http.HandlerFunc(s.handleStats),
			Methods: []string{http.MethodGet},
		},
	})
	return s
}

// Run starts the HTTP server and shuts it down when ctx is cancelled
func (s *Server) Run(ctx context.Context) (err error) {
	log.WithField("port", s.HTTPServer.Port).Info("server started")
	errCh := make(chan error, 1)
	go func() {
		err2 := s.HTTPServer.Run()
		if err2 == http.ErrServerClosed {
			err2 = nil
		}
		errCh <- err2
	}()

	select {
	case <-ctx.Done():
		err = s.HTTPServer.Shutdown(30 * time.Second)
		<-errCh
	case err = <-errCh:
	}

	log.WithError(err).Info("server stopped")
	return err
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	body, err := json.MarshalIndent(s.Reporter.Stats(), "", "\t")
	if err != nil {
		http.Error(w, "could not determine stats: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
