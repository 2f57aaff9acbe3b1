package tocmarks

import (
	"strconv"
	"strings"
	"sync"
)

// Test fixtures mimic `pdftohtml -i -s -stdout` output: one <div> per page,
// one absolutely positioned <p> per text run.

// p renders a positioned paragraph the way pdftohtml does.
func p(class, text string) string {
	return `<p style="position:absolute;top:100px;left:108px;white-space:nowrap" class="` + class + `">` + text + "</p>"
}

// page wraps lines in a page div.
func page(n int, lines ...string) string {
	return `<div id="page` + strconv.Itoa(n) + `-div" style="position:relative;width:918px;height:1188px;">` + "\n" +
		strings.Join(lines, "\n") + "\n</div>\n"
}

// bookFixture is a three page export:
//
//	page 1: contents, chapter "5 / Arrays / 42", section "5.1 / Array Bounds / 43"
//	page 2: chapter opening (no running header)
//	page 3: running header "43 Arrays", section heading "5.1 Array Bounds"
//
// Expected corrected pages: chapter 5 -> 2 (two </div> before the header),
// section 5.1 -> 3 (two </div> before the heading, plus one).
var bookFixture = "<!DOCTYPE html>\n<html>\n<body>\n" +
	page(1,
		p("ft10", "<b>Contents</b>"),
		p("ft11", "<b>5</b>"),
		p("ft11", "<b>Arrays</b>"),
		p("ft12", "42"),
		p("ft12", "5.1"),
		p("ft12", "Array Bounds"),
		p("ft12", "43"),
	) +
	page(2,
		p("ft20", "Chapter 5"),
		p("ft21", "Fixed-size collections of elements."),
	) +
	page(3,
		p("ft30", "<b>43</b>"),
		p("ft31", "Arrays"),
		p("ft32", "<b>5.1</b>"),
		p("ft32", "<b>Array Bounds</b>"),
		p("ft33", "Every array has bounds."),
	) +
	"</body>\n</html>\n"

// logEntry is one recorded diagnostic.
type logEntry struct {
	level   string
	msg     string
	keyvals []any
}

// recordingLogger captures diagnostics for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, keyvals []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, keyvals: keyvals})
}

func (l *recordingLogger) Debug(msg string, keyvals ...any) { l.record("debug", msg, keyvals) }
func (l *recordingLogger) Info(msg string, keyvals ...any)  { l.record("info", msg, keyvals) }
func (l *recordingLogger) Warn(msg string, keyvals ...any)  { l.record("warn", msg, keyvals) }
func (l *recordingLogger) Error(msg string, keyvals ...any) { l.record("error", msg, keyvals) }

// count returns how many entries have the given level and message.
func (l *recordingLogger) count(level, msg string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			n++
		}
	}
	return n
}
