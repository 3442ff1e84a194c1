package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashScreen finalizes the terminal before the stack trace is printed
var crashScreen atomic.Pointer[func()]

// SetCrashScreen registers the terminal finalizer used by HandleCrash
func SetCrashScreen(fini func()) {
	if fini == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&fini)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fini := crashScreen.Swap(nil); fini != nil {
		(*fini)()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
