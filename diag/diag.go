// Package diag carries the non-fatal diagnostics emitted by the emulator
// hardware, for example reads beyond the end of a cartridge image or writes
// to read-only memory. Components receive a Sink and never log globally, so
// tests can inspect exactly what was reported.
package diag

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Sink receives diagnostics.
type Sink interface {
	Log(tag, detail string)
}

// Logf formats a detail string and sends it to the sink. A nil sink is
// allowed.
func Logf(s Sink, tag, format string, args ...interface{}) {
	if s == nil {
		return
	}
	s.Log(tag, fmt.Sprintf(format, args...))
}

type discard struct{}

func (discard) Log(string, string) {}

// Discard drops everything.
var Discard Sink = discard{}

type glogSink struct{}

func (glogSink) Log(tag, detail string) {
	glog.Warningf("%s: %s", tag, detail)
}

// Glog forwards diagnostics to glog at warning level.
var Glog Sink = glogSink{}

// Verbose forwards diagnostics to glog only when the -v flag is at least
// level.
func Verbose(level glog.Level) Sink {
	return verboseSink(level)
}

type verboseSink glog.Level

func (v verboseSink) Log(tag, detail string) {
	if glog.V(glog.Level(v)) {
		glog.Infof("%s: %s", tag, detail)
	}
}

type multi []Sink

func (m multi) Log(tag, detail string) {
	for _, s := range m {
		s.Log(tag, detail)
	}
}

// Multi fans a diagnostic out to every sink.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

// Entry is a single line of the Log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	return s.String()
}

// Log is a bounded in-memory Sink. Consecutive identical diagnostics are
// folded into a single entry with a repeat count; a game polling an unmapped
// register every frame would otherwise flood it.
type Log struct {
	mu         sync.Mutex
	maxEntries int
	entries    []Entry
}

// NewLog creates a Log holding at most maxEntries entries.
func NewLog(maxEntries int) *Log {
	return &Log{maxEntries: maxEntries}
}

// Log implements Sink.
func (l *Log) Log(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].Repeated++
		l.entries[n-1].Timestamp = time.Now()
		return
	}
	l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
	if over := len(l.entries) - l.maxEntries; l.maxEntries > 0 && over > 0 {
		l.entries = l.entries[over:]
	}
}

// Entries returns a copy of the current entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Write writes every entry to output, one per line.
func (l *Log) Write(output io.Writer) {
	l.Tail(output, -1)
}

// Tail writes the last number entries to output. A negative number writes
// everything.
func (l *Log) Tail(output io.Writer, number int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := 0
	if number >= 0 && number < len(l.entries) {
		start = len(l.entries) - number
	}
	for _, e := range l.entries[start:] {
		io.WriteString(output, e.String()+"\n")
	}
}
