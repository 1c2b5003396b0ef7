package requirement

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// EvalLatencyObserver receives the time spent evaluating each atomic
// requisite, keyed by requisite kind.
type EvalLatencyObserver interface {
	ObserveEvalLatency(kind string, duration time.Duration)
}

type EvalLatencyLogger struct {
	logger *log.Logger
}

func NewEvalLatencyLogger(logger *log.Logger) *EvalLatencyLogger {
	return &EvalLatencyLogger{logger: logger}
}

func (l *EvalLatencyLogger) ObserveEvalLatency(kind string, duration time.Duration) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Printf("requisite_eval_latency kind=%s duration_ms=%.3f", kind, float64(duration.Microseconds())/1000.0)
}

// AsyncEvalLatencyObserver decouples observation from the evaluation hot
// path: events go through a bounded buffer and are dropped, counted, when the
// buffer is full.
type AsyncEvalLatencyObserver struct {
	next    EvalLatencyObserver
	events  chan evalLatencyEvent
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type evalLatencyEvent struct {
	kind     string
	duration time.Duration
}

func NewAsyncEvalLatencyObserver(next EvalLatencyObserver, buffer int) *AsyncEvalLatencyObserver {
	if buffer <= 0 {
		buffer = 1
	}

	o := &AsyncEvalLatencyObserver{
		next:   next,
		events: make(chan evalLatencyEvent, buffer),
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for ev := range o.events {
			if o.next == nil {
				continue
			}
			o.next.ObserveEvalLatency(ev.kind, ev.duration)
		}
	}()

	return o
}

func (o *AsyncEvalLatencyObserver) ObserveEvalLatency(kind string, duration time.Duration) {
	if o == nil {
		return
	}
	o.mu.RLock()
	if o.closed {
		o.mu.RUnlock()
		o.dropped.Add(1)
		return
	}
	select {
	case o.events <- evalLatencyEvent{kind: kind, duration: duration}:
	default:
		o.dropped.Add(1)
	}
	o.mu.RUnlock()
}

func (o *AsyncEvalLatencyObserver) Dropped() uint64 {
	if o == nil {
		return 0
	}
	return o.dropped.Load()
}

func (o *AsyncEvalLatencyObserver) Close() {
	if o == nil {
		return
	}
	o.once.Do(func() {
		o.mu.Lock()
		o.closed = true
		close(o.events)
		o.mu.Unlock()
		o.wg.Wait()
	})
}
