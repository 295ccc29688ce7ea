package logger

const (
	// LogsDirName is the directory created below FileSink.Path; every file
	// this package writes lives inside it.
	LogsDirName = "logs"

	logFilePrefix = "server-log-"
	logFileExt    = ".log"

	emptyString = ""
)

const (
	errMsgNilConfig     = "Logger config is nil."
	errMsgNilLogger     = "Logger handle is nil."
	errMsgNoSinks       = "No logging sinks enabled."
	errMsgConfigInvalid = "Logger configuration is invalid."
	errMsgReadConfig    = "Failed to read config file."
	errMsgCreateLogsDir = "Failed to create logs directory."
	errMsgOpenLogFile   = "Failed to open log file."
)
