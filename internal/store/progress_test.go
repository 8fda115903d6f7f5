package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	require.Equal(t, float64(50), Progress{Downloaded: 375, Total: 750}.Percent())
	require.Equal(t, float64(100), Progress{Downloaded: 750, Total: 750}.Percent())
	require.Equal(t, float64(0), Progress{Downloaded: 500, Total: 0}.Percent())
}

func TestProgressObserverEmitsOneSamplePerChunk(t *testing.T) {
	t.Parallel()

	var samples []Progress
	observer := newProgressObserver("tiny", 750, func(p Progress) {
		samples = append(samples, p)
	})

	chunk := bytes.Repeat([]byte("z"), 250)
	for i := 0; i < 3; i++ {
		n, err := observer.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, 250, n)
	}
	observer.stop()

	require.Len(t, samples, 3)
	require.Equal(t, Progress{Model: "tiny", Downloaded: 250, Total: 750}, samples[0])
	require.Equal(t, Progress{Model: "tiny", Downloaded: 500, Total: 750}, samples[1])
	require.Equal(t, Progress{Model: "tiny", Downloaded: 750, Total: 750}, samples[2])
}

func TestProgressObserverDeliversEverySampleBeforeStopReturns(t *testing.T) {
	t.Parallel()

	count := 0
	observer := newProgressObserver("tiny", 0, func(Progress) {
		count++
	})

	for i := 0; i < 200; i++ {
		_, err := observer.Write([]byte("chunk"))
		require.NoError(t, err)
	}
	observer.stop()

	require.Equal(t, 200, count)
}
