package cli

import (
	"os"
	"time"

	"github.com/fmueller/whisperctl/internal/store"
	"github.com/schollz/progressbar/v3"
)

type stopFunc func()

// downloadProgress builds the progress callback handed to the store. The
// bar is created lazily on the first sample, when the total size is known.
// The callback runs on the store's observer goroutine, so the bar never
// touches the transfer's write path.
func downloadProgress(enabled bool) (store.ProgressFunc, stopFunc) {
	if !enabled {
		return nil, func() {}
	}

	var bar *progressbar.ProgressBar
	onProgress := func(p store.Progress) {
		if bar == nil {
			total := p.Total
			if total <= 0 {
				// Unknown length renders as a spinner.
				total = -1
			}
			bar = progressbar.NewOptions64(
				total,
				progressbar.OptionSetDescription("downloading "+p.Model),
				progressbar.OptionSetWidth(20),
				progressbar.OptionShowBytes(true),
				progressbar.OptionThrottle(65*time.Millisecond),
				progressbar.OptionSetRenderBlankState(true),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set64(p.Downloaded)
	}

	stop := func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}
	return onProgress, stop
}
