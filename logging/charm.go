// Package logging binds dtmf.Logger to github.com/charmbracelet/log, the
// structured leveled logger the teacher pulls in (unused in the original
// source tree) for exactly the kind of levelled, key/value console output
// spec §6's Logger contract calls for.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/tonewolf/tonewolf/dtmf"
)

// CharmLogger adapts *log.Logger to dtmf.Logger. charmbracelet/log natively
// supports Debug/Info/Warn/Error/Fatal; Trace is layered on top as a
// separate enable bit rather than a custom Level, since the library's
// level filtering is keyed to its own five-level enum — Trace messages are
// tagged with a "level=trace" field and routed through Debug so they still
// respect the underlying logger's configured minimum level and writer.
type CharmLogger struct {
	logger *log.Logger
	trace  bool
}

// New builds a CharmLogger writing to w at the given minimum level.
// traceEnabled additionally gates Trace calls independently of level,
// since Trace sits below every level charmbracelet/log defines.
func New(w io.Writer, level log.Level, traceEnabled bool) *CharmLogger {
	var logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	return &CharmLogger{logger: logger, trace: traceEnabled}
}

func (c *CharmLogger) Trace(msg string, kv ...any) {
	if !c.trace {
		return
	}

	c.logger.Debug(msg, append([]any{"level", "trace"}, kv...)...)
}

func (c *CharmLogger) Debug(msg string, kv ...any) { c.logger.Debug(msg, kv...) }
func (c *CharmLogger) Info(msg string, kv ...any)  { c.logger.Info(msg, kv...) }
func (c *CharmLogger) Warn(msg string, kv ...any)  { c.logger.Warn(msg, kv...) }
func (c *CharmLogger) Error(msg string, kv ...any) { c.logger.Error(msg, kv...) }

// Fatal logs at fatal level and terminates the process, matching the
// user-visible failure behavior of spec §7 ("the shell pops a modal error
// dialog for error and fatal levels") — a CLI has no dialog, so it exits
// non-zero instead, which log.Logger.Fatal already does.
func (c *CharmLogger) Fatal(msg string, kv ...any) { c.logger.Fatal(msg, kv...) }

var _ dtmf.Logger = (*CharmLogger)(nil)
