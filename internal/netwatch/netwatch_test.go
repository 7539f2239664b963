package netwatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatcherReflectsProbeResult(t *testing.T) {
	var fail bool
	w := &Watcher{
		stop: make(chan struct{}),
		dial: func() error {
			if fail {
				return errors.New("unreachable")
			}
			return nil
		},
	}

	w.probe()
	assert.True(t, w.Online())

	fail = true
	w.probe()
	assert.False(t, w.Online())

	fail = false
	w.probe()
	assert.True(t, w.Online())
}
