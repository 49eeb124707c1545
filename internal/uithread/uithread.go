// Package uithread serializes work onto a single goroutine that is locked to
// one OS thread. Native UI toolkits (Win32 common dialogs, COM) must be
// driven from the thread that created their state.
package uithread

import (
	"runtime"
	"sync"
)

// Thread executes submitted functions one at a time on a dedicated, locked
// OS thread. The zero value is not usable; call New.
type Thread struct {
	once  sync.Once
	work  chan func()
	setup func()
}

// New returns a Thread. setup, if non-nil, runs once on the locked thread
// before any work (for example COM initialization).
func New(setup func()) *Thread {
	return &Thread{work: make(chan func()), setup: setup}
}

func (t *Thread) start() {
	ready := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		if t.setup != nil {
			t.setup()
		}
		close(ready)
		for f := range t.work {
			f()
		}
	}()
	<-ready
}

// Call runs f on the UI thread and blocks until it returns. A panic in f is
// re-raised in the caller. f must not call Call on the same Thread.
func (t *Thread) Call(f func()) {
	t.once.Do(t.start)

	done := make(chan struct{})
	var panicked any
	t.work <- func() {
		defer func() {
			panicked = recover()
			close(done)
		}()
		f()
	}
	<-done
	if panicked != nil {
		panic(panicked)
	}
}

// Do runs f on t and returns its result.
func Do[T any](t *Thread, f func() T) T {
	var out T
	t.Call(func() { out = f() })
	return out
}
