package logger

import (
	"io"
	"log"
	"strings"
)

// streamWriter adapts the handle to io.Writer. Each Write becomes one info
// entry; there is no buffering and no backpressure beyond the sinks
// themselves.
type streamWriter struct {
	logger *AppLogger
}

// Stream returns an io.Writer that records every written line at info
// severity, for access log middleware and other libraries that log by
// writing to a writer. Writes before Init fail with ErrNotInitialized.
func (l *AppLogger) Stream() io.Writer {
	return &streamWriter{logger: l}
}

func (w *streamWriter) Write(p []byte) (int, error) {
	// The middleware terminates lines; the sinks add their own.
	msg := strings.TrimRight(string(p), "\n")
	// Dispatch directly so a caller annotation names the writer's caller,
	// not this adapter.
	if err := w.logger.log(LevelInfo, msg, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// StdLogger returns a standard library logger that feeds the info channel,
// for APIs that insist on a *log.Logger such as http.Server.ErrorLog.
func (l *AppLogger) StdLogger() *log.Logger {
	return log.New(l.Stream(), emptyString, 0)
}
