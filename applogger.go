package logger

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// AppLogger fans entries out to the configured sinks. The zero value is a
// valid handle that rejects writes with ErrNotInitialized until Init
// installs sinks; all methods are safe for concurrent use.
type AppLogger struct {
	sinks       atomic.Pointer[sinkSet]
	initialized atomic.Bool
	mu          sync.Mutex
}

var _ Logger = (*AppLogger)(nil)

// New returns an uninitialized handle for callers that prefer their own
// instance over the shared one.
func New() *AppLogger {
	return &AppLogger{}
}

var (
	instance     *AppLogger
	instanceOnce sync.Once
)

// Instance returns the process wide handle. The handle exists immediately
// and can be passed around freely; it accepts entries once Init succeeds.
func Instance() *AppLogger {
	instanceOnce.Do(func() {
		instance = New()
	})
	return instance
}

// Init builds the sinks described by cfg and installs them on the handle.
// On any failure the previous sinks stay in place and the returned InitError
// says which step broke. Calling Init again replaces the sinks; entries
// never land in both generations.
func (l *AppLogger) Init(cfg *Config) error {
	const op Op = "logger.Init"

	if l == nil {
		return newInitError(op, errMsgNilLogger, nil)
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	set := &sinkSet{withCaller: cfg.WithCaller}
	if cfg.File != nil {
		fs, err := buildFileSink(cfg.File)
		if err != nil {
			return err
		}
		set.sinks = append(set.sinks, fs)
	}
	if cfg.Console != nil {
		set.sinks = append(set.sinks, buildConsoleSink(cfg.Console))
	}

	old := l.sinks.Swap(set)
	l.initialized.Store(true)
	if old != nil {
		_ = old.close()
	}
	return nil
}

// Close releases the sinks and returns the handle to its uninitialized
// state. Safe to call multiple times and on a handle that never initialized.
func (l *AppLogger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.initialized.Store(false)
	old := l.sinks.Swap(nil)
	if old == nil {
		return nil
	}
	return old.close()
}

// Error records msg at the most urgent severity.
func (l *AppLogger) Error(msg string, meta ...Meta) error {
	return l.log(LevelError, msg, meta)
}

// Warn records msg at warning severity.
func (l *AppLogger) Warn(msg string, meta ...Meta) error {
	return l.log(LevelWarning, msg, meta)
}

// Info records msg at informational severity.
func (l *AppLogger) Info(msg string, meta ...Meta) error {
	return l.log(LevelInfo, msg, meta)
}

// Verbose records msg at a severity between info and debug, for flow level
// detail that would drown the info channel.
func (l *AppLogger) Verbose(msg string, meta ...Meta) error {
	return l.log(LevelVerbose, msg, meta)
}

// Debug records msg at debug severity.
func (l *AppLogger) Debug(msg string, meta ...Meta) error {
	return l.log(LevelDebug, msg, meta)
}

// Silly records msg at the least urgent severity.
func (l *AppLogger) Silly(msg string, meta ...Meta) error {
	return l.log(LevelSilly, msg, meta)
}

// Log records msg at an explicit severity.
func (l *AppLogger) Log(lvl Level, msg string, meta ...Meta) error {
	return l.log(lvl, msg, meta)
}

// log is the single dispatch point behind the exported methods. The caller
// annotation assumes exactly one exported frame between here and user code.
func (l *AppLogger) log(lvl Level, msg string, meta []Meta) error {
	if l == nil || !l.initialized.Load() {
		return ErrNotInitialized
	}
	set := l.sinks.Load()
	if set == nil {
		return ErrNotInitialized
	}

	var caller string
	if set.withCaller {
		if pc, file, line, ok := runtime.Caller(2); ok {
			caller = zerolog.CallerMarshalFunc(pc, file, line)
		}
	}

	set.emit(lvl, msg, mergeMeta(meta), caller)
	return nil
}
