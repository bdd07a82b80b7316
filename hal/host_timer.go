//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// hostTimer emulates a periodic timer interrupt with a ticker goroutine.
type hostTimer struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func (t *hostTimer) Start(hz uint32, fn func()) error {
	if hz == 0 || fn == nil {
		return fmt.Errorf("timer start at %d Hz: %w", hz, os.ErrInvalid)
	}
	period := time.Second / time.Duration(hz)
	if period <= 0 {
		return fmt.Errorf("timer start at %d Hz: %w", hz, os.ErrInvalid)
	}

	t.Stop()

	t.mu.Lock()
	defer t.mu.Unlock()
	stop := make(chan struct{})
	done := make(chan struct{})
	t.stop, t.done = stop, done

	go func() {
		defer close(done)
		tk := time.NewTicker(period)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				fn()
			}
		}
	}()
	return nil
}

func (t *hostTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
}
