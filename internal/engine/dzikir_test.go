package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatorSlotsAreWeightProportional(t *testing.T) {
	r := NewRotator(5)
	require.Len(t, r.durations, 6)

	// 5 minutes over a weight sum of 13: the first entry (weight 1.5)
	// gets 300000ms/13*1.5 ~= 34615ms.
	first := r.durations[0]
	assert.InDelta(t, 34615, float64(first.Milliseconds()), 1)

	var total time.Duration
	for _, d := range r.durations {
		assert.GreaterOrEqual(t, d, fadeDuration)
		total += d
	}
	assert.InDelta(t, float64(5*time.Minute), float64(total), float64(10*time.Millisecond))
}

func TestRotatorWalksEntriesInOrder(t *testing.T) {
	r := NewRotator(5)
	start := time.Date(2025, time.March, 3, 15, 20, 0, 0, time.UTC)
	r.Start(start)

	_, idx, visible, ok := r.Frame(start)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.True(t, visible)

	// Just past the first slot the second entry shows.
	_, idx, _, ok = r.Frame(start.Add(r.durations[0] + time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	// Inside the fade-out tail of the first slot the entry is hidden.
	_, idx, visible, ok = r.Frame(start.Add(r.durations[0] - 500*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.False(t, visible)
}

func TestRotatorWrapsPastTotalDuration(t *testing.T) {
	r := NewRotator(5)
	start := time.Date(2025, time.March, 3, 15, 20, 0, 0, time.UTC)
	r.Start(start)

	// A clock jump past the end of the schedule lands back on the first
	// entry instead of blanking the pane.
	_, idx, _, ok := r.Frame(start.Add(r.total))
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, idx, _, ok = r.Frame(start.Add(r.total + r.durations[0] + time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRotatorZeroDurationNeverRuns(t *testing.T) {
	r := NewRotator(0)
	r.Start(time.Now())
	_, _, _, ok := r.Frame(time.Now())
	assert.False(t, ok)
}

func TestRotatorStoppedByDefault(t *testing.T) {
	r := NewRotator(5)
	_, _, _, ok := r.Frame(time.Now())
	assert.False(t, ok)
}
