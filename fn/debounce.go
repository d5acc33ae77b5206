package fn

import (
	"log"
	"sync"
	"time"
)

// Debouncer delays calls to a function until no new call has arrived for the
// configured wait. Only the latest argument is delivered.
type Debouncer[A any] struct {
	m       sync.Mutex
	wait    time.Duration
	f       func(A)
	timer   *time.Timer
	gen     uint64
	pending bool
	arg     A
}

// Debounce returns a Debouncer that runs f after wait has passed without a
// new Call.
func Debounce[A any](wait time.Duration, f func(A)) *Debouncer[A] {
	if wait <= 0 {
		log.Panicf("debounce wait must be greater than 0, got %s", wait)
	}
	return &Debouncer[A]{wait: wait, f: f}
}

// Call records arg and restarts the wait.
func (d *Debouncer[A]) Call(arg A) {
	d.m.Lock()
	defer d.m.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.pending = true
	d.arg = arg

	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Flush runs a pending call immediately on the calling goroutine. It reports
// whether a call was pending.
func (d *Debouncer[A]) Flush() bool {
	arg, ok := d.take(0)
	if ok {
		d.run(arg)
	}
	return ok
}

// Stop drops any pending call.
func (d *Debouncer[A]) Stop() {
	d.take(0)
}

func (d *Debouncer[A]) fire(gen uint64) {
	if arg, ok := d.take(gen); ok {
		d.run(arg)
	}
}

// take clears the pending call. A non-zero gen only matches the call that
// scheduled it, so a timer that fired late cannot steal a newer call.
func (d *Debouncer[A]) take(gen uint64) (A, bool) {
	d.m.Lock()
	defer d.m.Unlock()

	if !d.pending || (gen != 0 && gen != d.gen) {
		return *new(A), false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	arg := d.arg
	d.pending = false
	d.arg = *new(A)
	return arg, true
}

func (d *Debouncer[A]) run(arg A) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("debounced function panicked: %v", p)
		}
	}()
	d.f(arg)
}
