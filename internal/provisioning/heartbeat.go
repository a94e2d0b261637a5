package provisioning

import (
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// startHeartbeat emits a periodic log tick until stop is called. The
// tick is pure user feedback during the long-running creation call; the
// returned stop is safe to call more than once and must run on both the
// success and failure path so no ticker outlives the call.
func startHeartbeat(log logr.Logger, interval time.Duration) (stop func()) {
	done := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		start := time.Now()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				log.Info("still working", "elapsed", time.Since(start).Round(time.Second).String())
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
