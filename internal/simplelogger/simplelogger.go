package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

var mu sync.Mutex

// now is replaced in tests.
var now = time.Now

// EnvLogFile names the environment variable holding the log file path.
const EnvLogFile = "WORDDIFF_LOG_FILE"

// Log is a minimal printf-style logger. It appends formatted output, prefixed with a timestamp, to the file named by WORDDIFF_LOG_FILE.
//
// If WORDDIFF_LOG_FILE is unset/empty or the path can't be opened as a file, Log is a no-op. worddiff only logs events a user would otherwise never see: algorithm
// fallbacks, failed comparisons, and configuration loading.
func Log(format string, args ...any) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	b.WriteString(now().Format(time.RFC3339))
	b.WriteByte(' ')
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
