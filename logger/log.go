// This file is part of GopherPico.
//
// GopherPico is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPico is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPico.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is the destination of log entries. There is no need for more than
// one in most situations, see the package level functions that work with the
// central logger.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// the index of the first entry not yet sent by writeRecent()
	recent int

	// if echo is non-nil then new entries are written to it as they arrive
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the logger. The detail argument can be of any type,
// with error and fmt.Stringer instances treated specially.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	var s string
	switch d := detail.(type) {
	case error:
		s = d.Error()
	case string:
		s = d
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", detail)
	}

	// remove all newline characters from tag and detail strings
	tag = strings.ReplaceAll(tag, "\n", "")
	s = strings.ReplaceAll(s, "\n", " ")

	// collapse consecutive entries with the same content into one
	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if e.tag == tag && e.detail == s {
			e.repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	e := Entry{Timestamp: time.Now(), tag: tag, detail: s}
	l.entries = append(l.entries, e)

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		d := len(l.entries) - l.maxEntries
		l.entries = l.entries[d:]
		l.recent -= d
		if l.recent < 0 {
			l.recent = 0
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Logf adds a formatted entry to the logger.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	l.Log(perm, tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the logger.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.entries = l.entries[:0]
	l.recent = 0
}

// Write contents of the logger to io.Writer.
func (l *Logger) Write(output io.Writer) {
	if output == nil {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if output != nil {
		for _, e := range l.entries[l.recent:] {
			io.WriteString(output, e.String())
		}
	}
	l.recent = len(l.entries)
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	if output == nil {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho to print new entries to io.Writer as they arrive. A nil writer
// turns echoing off. If writeRecent is true then entries not yet seen by
// WriteRecent() are written out immediately.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	l.echo = output
	l.crit.Unlock()

	if writeRecent {
		l.WriteRecent(output)
	}
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()

	f(l.entries)
}
