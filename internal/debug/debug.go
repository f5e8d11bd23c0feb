package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	opened  bool
	logFile *os.File
)

// open resolves the log destination from POINTER_DEBUG. Caller must hold mu.
func open() {
	opened = true
	path := os.Getenv("POINTER_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	logFile = f
}

// Log writes a timestamped message to the debug log. No-op unless
// POINTER_DEBUG points at a writable file path.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !opened {
		open()
	}
	if logFile == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Close closes the debug log file. Later Log calls become no-ops.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
