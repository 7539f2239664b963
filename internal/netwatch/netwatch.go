// Package netwatch tracks whether the display currently has internet
// access. Schedule resolution and Hijri lookups consult it to decide
// between remote fetches and local fallbacks.
package netwatch

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	probeAddr     = "1.1.1.1:53"
	probeTimeout  = 3 * time.Second
	probeInterval = 30 * time.Second
)

// Watcher probes a well-known endpoint on an interval and exposes the
// last observed result without blocking callers.
type Watcher struct {
	online atomic.Bool
	dial   func() error
	stop   chan struct{}
}

func New() *Watcher {
	w := &Watcher{
		stop: make(chan struct{}),
		dial: func() error {
			conn, err := net.DialTimeout("tcp", probeAddr, probeTimeout)
			if err != nil {
				return err
			}
			return conn.Close()
		},
	}
	w.probe()
	return w
}

// Online reports the result of the most recent probe.
func (w *Watcher) Online() bool { return w.online.Load() }

// Run probes until Stop is called. Meant to be started as a goroutine.
func (w *Watcher) Run() {
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.probe()
		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) Stop() { close(w.stop) }

func (w *Watcher) probe() {
	err := w.dial()
	was := w.online.Load()
	now := err == nil
	w.online.Store(now)
	if was != now {
		log.Info().Bool("online", now).Msg("connectivity changed")
	}
}
