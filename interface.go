package logger

// Logger is the consumer facing surface of the application logger. Packages
// that log should accept this interface instead of the concrete handle so
// tests can substitute their own recorder.
//
// Every method reports ErrNotInitialized when called before Init; a nil
// error means the entry was handed to every sink whose threshold it passed.
type Logger interface {
	Error(msg string, meta ...Meta) error
	Warn(msg string, meta ...Meta) error
	Info(msg string, meta ...Meta) error
	Verbose(msg string, meta ...Meta) error
	Debug(msg string, meta ...Meta) error
	Silly(msg string, meta ...Meta) error
}
