// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

import (
	"runtime"
	"runtime/debug"
	"sync"
)

// CriticalSection keeps the caller from being preempted between Enter and
// the matching Exit.
//
// Sections nest; only the outermost Exit lifts the protection.
type CriticalSection interface {
	Enter()
	Exit()
}

// Nop is a CriticalSection that does nothing.
type Nop struct{}

// Enter implements CriticalSection.
func (Nop) Enter() {}

// Exit implements CriticalSection.
func (Nop) Exit() {}

// ThreadLock is a CriticalSection for hosted Go programs.
//
// It pins the calling goroutine to its OS thread and holds off the garbage
// collector, the two sources of long pauses the program controls. Kernel
// scheduling is not affected; run the process with a real-time priority for
// that.
type ThreadLock struct {
	mu    sync.Mutex
	depth int
	gc    int
}

// NewThreadLock returns a ready to use ThreadLock.
func NewThreadLock() *ThreadLock {
	return &ThreadLock{}
}

// Enter implements CriticalSection.
func (t *ThreadLock) Enter() {
	runtime.LockOSThread()
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth == 0 {
		t.gc = debug.SetGCPercent(-1)
	}
	t.depth++
}

// Exit implements CriticalSection. An Exit without Enter is ignored.
func (t *ThreadLock) Exit() {
	t.mu.Lock()
	if t.depth == 0 {
		t.mu.Unlock()
		return
	}
	t.depth--
	if t.depth == 0 {
		debug.SetGCPercent(t.gc)
	}
	t.mu.Unlock()
	runtime.UnlockOSThread()
}

var _ CriticalSection = Nop{}
var _ CriticalSection = &ThreadLock{}
