package store

// Progress is one byte-level progress sample for an in-flight download.
type Progress struct {
	Model      string
	Downloaded int64
	Total      int64
}

// Percent returns the completed fraction as a percentage, or 0 when the
// total size is unknown.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Downloaded) / float64(p.Total) * 100
}

// ProgressFunc receives download progress samples in order. It runs on an
// observer goroutine, not on the transfer's write path.
type ProgressFunc func(Progress)

// progressObserver bridges the transfer loop and the progress callback
// through a buffered channel. Sends block when the buffer fills, so no
// sample is ever dropped.
type progressObserver struct {
	model   string
	total   int64
	written int64
	samples chan Progress
	done    chan struct{}
}

func newProgressObserver(model string, total int64, fn ProgressFunc) *progressObserver {
	o := &progressObserver{
		model:   model,
		total:   total,
		samples: make(chan Progress, 64),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(o.done)
		for sample := range o.samples {
			fn(sample)
		}
	}()

	return o
}

// Write records a durably written chunk and queues a sample for the
// observer goroutine.
func (o *progressObserver) Write(p []byte) (int, error) {
	o.written += int64(len(p))
	o.samples <- Progress{Model: o.model, Downloaded: o.written, Total: o.total}
	return len(p), nil
}

// stop closes the sample channel and waits until the observer has
// delivered every queued sample.
func (o *progressObserver) stop() {
	close(o.samples)
	<-o.done
}
