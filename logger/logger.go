// Package logger is the central log for the application. Other packages add
// entries with the Log() and Logf() functions. The most recent entries can be
// copied with Tail().
//
// The core input packages never log. Logging is for the binding and for the
// user-facing parts of the application.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// Permission indicates whether the logging request should be allowed.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the permission to use when logging should proceed unconditionally.
var Allow Permission = allow{}

type entry struct {
	tag      string
	detail   string
	repeated int
}

func (e entry) String() string {
	if e.repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)", e.tag, e.detail, e.repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type logger struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

// the central logger instance used by the package level functions
var central logger

// Log adds an entry to the central logger. The detail argument can be of any
// type but strings and errors are the most useful.
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	central.crit.Lock()
	defer central.crit.Unlock()

	e := entry{
		tag:    tag,
		detail: fmt.Sprintf("%v", detail),
	}

	// identical consecutive entries are counted rather than appended
	if len(central.entries) > 0 {
		last := &central.entries[len(central.entries)-1]
		if last.tag == e.tag && last.detail == e.detail {
			last.repeated++
			return
		}
	}

	central.entries = append(central.entries, e)

	if central.echo != nil {
		fmt.Fprintln(central.echo, e.String())
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// SetEcho copies new entries to the supplied writer as they arrive. A nil
// writer stops the echo.
func SetEcho(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = output
}

// Tail writes the last number of entries to the supplied writer. A number
// less than zero writes the entire log.
func Tail(output io.Writer, number int) {
	central.crit.Lock()
	defer central.crit.Unlock()

	var t []entry
	if number < 0 || number > len(central.entries) {
		t = central.entries
	} else {
		t = central.entries[len(central.entries)-number:]
	}

	for _, e := range t {
		fmt.Fprintln(output, e.String())
	}
}
