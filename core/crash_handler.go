package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	cleanupMu    sync.Mutex
	crashCleanup func()
	exit         = os.Exit
)

// SetCrashCleanup registers the terminal restore hook run before a crash report
// Typically the screen's Fini; nil clears it
func SetCrashCleanup(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	crashCleanup = fn
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	fn := crashCleanup
	cleanupMu.Unlock()
	if fn != nil {
		fn()
	}

	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
