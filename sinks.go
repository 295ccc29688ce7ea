package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const fileTimeFormat = time.RFC3339

// entrySink is the narrow surface a destination backend provides: render one
// entry and release whatever it holds open. Rotation and retention live
// behind the file backend's writer, not here.
type entrySink interface {
	writeEntry(lvl Level, msg string, fields map[string]interface{}, caller string)
	close() error
}

// sink gates one destination behind its severity threshold. Entries are
// rendered per sink because every destination carries its own format and
// cutoff.
type sink struct {
	level Level
	out   entrySink
}

// sinkSet is the immutable product of one Init call. Re-initialization swaps
// the whole set, so readers never observe a partially built one.
type sinkSet struct {
	sinks      []sink
	withCaller bool
}

func (s *sinkSet) emit(lvl Level, msg string, fields map[string]interface{}, caller string) {
	for i := range s.sinks {
		sk := &s.sinks[i]
		if !sk.level.Enables(lvl) {
			continue
		}
		sk.out.writeEntry(lvl, msg, fields, caller)
	}
}

func (s *sinkSet) close() error {
	var firstErr error
	for i := range s.sinks {
		if err := s.sinks[i].out.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// zerologSink renders entries through a zerolog.Logger. The severity name
// travels as a plain field so all six ranks survive the backend's narrower
// level ladder. closer owns the file writer when there is one.
type zerologSink struct {
	zl     zerolog.Logger
	closer io.Closer
}

func (s *zerologSink) writeEntry(lvl Level, msg string, fields map[string]interface{}, caller string) {
	e := s.zl.Log().Str(zerolog.LevelFieldName, lvl.String())
	if caller != emptyString {
		e = e.Str(zerolog.CallerFieldName, caller)
	}
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(msg)
}

func (s *zerologSink) close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func buildConsoleSink(cfg *ConsoleSink) sink {
	noColor := cfg.NoColor
	if !noColor {
		fd := os.Stderr.Fd()
		noColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    noColor,
		TimeFormat: cfg.TimeFormat,
	}
	out.FormatLevel = consoleFormatLevel(noColor)

	zl := zerolog.New(out).With().Timestamp().Logger()
	return sink{level: cfg.Level, out: &zerologSink{zl: zl}}
}

func buildFileSink(cfg *FileSink) (sink, error) {
	const op Op = "logger.buildFileSink"

	dir := filepath.Join(cfg.Path, LogsDirName)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return sink{}, newInitError(op, errMsgCreateLogsDir, err)
	}

	w := newDailyWriter(dir, cfg.MaxFileCount, cfg.MaxFileSizeMB, cfg.Compress)
	if err := w.probe(); err != nil {
		return sink{}, newInitError(op, errMsgOpenLogFile, err)
	}

	var out io.Writer = w
	if !cfg.LogAsJSON {
		cw := zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: fileTimeFormat,
		}
		cw.FormatLevel = consoleFormatLevel(true)
		out = cw
	}

	zl := zerolog.New(out).With().Timestamp().Logger()
	return sink{level: cfg.Level, out: &zerologSink{zl: zl, closer: w}}, nil
}

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35
	colorCyan    = 36
)

func levelLabel(l Level) string {
	switch l {
	case LevelError:
		return "ERR"
	case LevelWarning:
		return "WRN"
	case LevelInfo:
		return "INF"
	case LevelVerbose:
		return "VRB"
	case LevelDebug:
		return "DBG"
	case LevelSilly:
		return "SLY"
	default:
		return "???"
	}
}

func levelColor(l Level) int {
	switch l {
	case LevelError:
		return colorRed
	case LevelWarning:
		return colorYellow
	case LevelInfo:
		return colorGreen
	case LevelVerbose:
		return colorCyan
	case LevelDebug:
		return colorBlue
	case LevelSilly:
		return colorMagenta
	default:
		return 0
	}
}

// consoleFormatLevel renders the six severity names as colored three letter
// labels. The backend's own formatter only knows its native level names.
func consoleFormatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		name, ok := i.(string)
		if !ok {
			return "???"
		}
		lvl, err := ParseLevel(name)
		if err != nil {
			return strings.ToUpper(name)
		}
		return colorize(levelLabel(lvl), levelColor(lvl), noColor)
	}
}

func colorize(s string, color int, disabled bool) string {
	if disabled || color == 0 {
		return s
	}
	return "\x1b[" + strconv.Itoa(color) + "m" + s + "\x1b[0m"
}
