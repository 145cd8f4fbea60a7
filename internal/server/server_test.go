package server

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/clambin/vetinari/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeReporter struct {
	stats scheduler.Stats
}

func (f fakeReporter) Stats() scheduler.Stats {
	return f.stats
}

var testStats = scheduler.Stats{
	Length:   1,
	Capacity: 4,
	Slot:     2,
	Ticks:    6,
	Pulses:   2,
	Cycles:   1,
	State:    0xAB38,
	Plan:     "1000",
}

func TestServer_handleStats(t *testing.T) {
	s := Server{Reporter: fakeReporter{stats: testStats}}

	w := httptest.NewRecorder()
	s.handleStats(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got scheduler.Stats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, testStats, got)
}

func TestServer_Run(t *testing.T) {
	s := New(0, fakeReporter{stats: testStats})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.Run(ctx) }()

	url := fmt.Sprintf("http://localhost:%d/stats", s.HTTPServer.Port)
	assert.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		var got scheduler.Stats
		return resp.StatusCode == http.StatusOK &&
			json.NewDecoder(resp.Body).Decode(&got) == nil &&
			got == testStats
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
