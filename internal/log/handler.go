package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// timeLayout is the timestamp format for console log lines.
const timeLayout = "2006-01-02 15:04:05"

// ConsoleHandler is an slog.Handler that renders records as
// "timestamp - LEVEL - message key=value ..." lines.
//
// Design decision: We implement a handler rather than wrapping
// slog.NewTextHandler because:
//  1. The line shape (timestamp, severity, message) is the tool's entire
//     user-facing surface and should not drift with slog's text encoding
//  2. It keeps attribute rendering compact for narrow terminals
//  3. It integrates seamlessly with standard slog APIs
type ConsoleHandler struct {
	// mu serializes writes so concurrent loggers cannot interleave lines.
	// Shared by pointer so WithAttrs/WithGroup clones keep one lock.
	mu *sync.Mutex

	// w is the destination for rendered lines.
	w io.Writer

	// level is the minimum level this handler reports.
	level slog.Leveler

	// attrs holds attributes added via WithAttrs, rendered after the
	// record's own attributes.
	attrs []slog.Attr

	// groups holds open group names; attribute keys are prefixed with
	// them, dot-separated.
	groups []string
}

// NewConsoleHandler creates a ConsoleHandler writing to w at the given level.
func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record as a single console line.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	if !r.Time.IsZero() {
		sb.WriteString(r.Time.Format(timeLayout))
		sb.WriteString(" - ")
	}
	sb.WriteString(r.Level.String())
	sb.WriteString(" - ")
	sb.WriteString(r.Message)

	// Attributes added via With come first, then the record's own.
	for _, a := range h.attrs {
		h.appendAttr(&sb, "", a)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, prefix, a)
		return true
	})

	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// appendAttr renders one attribute, recursively flattening groups.
func (h *ConsoleHandler) appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := a.Key
		if prefix != "" {
			groupPrefix = prefix + "." + a.Key
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(sb, groupPrefix, ga)
		}
		return
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	value := a.Value.String()
	if strings.ContainsAny(value, " \t") {
		value = fmt.Sprintf("%q", value)
	}

	sb.WriteString(" ")
	sb.WriteString(key)
	sb.WriteString("=")
	sb.WriteString(value)
}

// WithAttrs returns a new handler with the given attributes added.
// Keys are prefixed with the currently open groups at attachment time.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if prefix != "" && a.Value.Kind() != slog.KindGroup {
			a.Key = prefix + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup returns a new handler with the given group name opened.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// New creates an slog.Logger with console handling.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Info
//
// Per-file skip messages are logged at Debug and therefore only appear
// in verbose mode; the run's moves and errors are visible by default.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewConsoleHandler(w, level))
}
