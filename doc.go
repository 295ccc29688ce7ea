// Package logger provides the application wide logging handle: a colorized
// console sink for humans, a daily rolling file sink for machines, and six
// severity levels from error down to silly.
//
// Key features
//   - Six ordered levels (error, warn, info, verbose, debug, silly) with an
//     independent threshold per sink
//   - Console output colorized per level on stderr; file output as one JSON
//     record per line or as readable text
//   - One file per calendar day under <path>/logs, named after the day,
//     with count based retention of the most recent days
//   - Explicit lifecycle: the shared handle exists before Init but rejects
//     writes with ErrNotInitialized instead of crashing or exiting
//   - Structured metadata via Meta maps; error values are expanded into
//     their full cause chain
//   - io.Writer stream adapter for access log middleware
//
// Typical usage
//
//	log := logger.Instance()
//	if err := log.Init(logger.DefaultConfig("production", ".")); err != nil {
//		panic(err)
//	}
//	defer log.Close()
//
//	log.Info("server started", logger.Meta{"port": 8080})
//	log.Error("request failed", logger.Meta{"err": err, "path": r.URL.Path})
package logger
