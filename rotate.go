package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// fileSizeUnboundedMB keeps lumberjack from applying its own 100MB default
// when no in-day size cap is configured.
const fileSizeUnboundedMB = 1 << 20

// dailyWriter writes one log file per calendar day, delegating the file
// handling of the active day to a lumberjack logger. Crossing midnight rolls
// to a fresh file on the next write; rolling then prunes the files of days
// beyond the retention count.
type dailyWriter struct {
	dir      string
	maxDays  int
	sizeMB   int
	compress bool

	now func() time.Time

	mu   sync.Mutex
	day  time.Time
	file *lumberjack.Logger
}

func newDailyWriter(dir string, maxDays, sizeMB int, compress bool) *dailyWriter {
	return &dailyWriter{
		dir:      dir,
		maxDays:  maxDays,
		sizeMB:   sizeMB,
		compress: compress,
		now:      time.Now,
	}
}

// logFileName returns the file name for the given day, e.g.
// server-log-2026-8-21.log. Month and day are not zero padded.
func logFileName(t time.Time) string {
	return fmt.Sprintf("%s%d-%d-%d%s", logFilePrefix, t.Year(), int(t.Month()), t.Day(), logFileExt)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (w *dailyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	day := midnight(w.now())
	if w.file == nil || !day.Equal(w.day) {
		if err := w.roll(day); err != nil {
			return 0, err
		}
	}
	return w.file.Write(p)
}

// probe opens the current day's file for append so path problems surface at
// initialization instead of on the first write.
func (w *dailyWriter) probe() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.roll(midnight(w.now())); err != nil {
		return err
	}
	// Same mode lumberjack uses for the files it creates itself.
	f, err := os.OpenFile(w.file.Filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}

// roll points the writer at the given day's file and prunes old days.
// Callers must hold mu.
func (w *dailyWriter) roll(day time.Time) error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return err
		}
	}

	sizeMB := w.sizeMB
	if sizeMB <= 0 {
		sizeMB = fileSizeUnboundedMB
	}
	w.file = &lumberjack.Logger{
		Filename: filepath.Join(w.dir, logFileName(day)),
		MaxSize:  sizeMB,
		Compress: w.compress,
	}
	w.day = day

	// Retention must not block the day's writes.
	_ = w.prune()

	return nil
}

// prune removes the files of the oldest days so that at most maxDays days
// remain. Files that size rotation chunked or compressed go together with
// their day. A maxDays of zero keeps everything.
func (w *dailyWriter) prune() error {
	if w.maxDays <= 0 {
		return nil
	}

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return err
	}

	byDay := make(map[time.Time][]string)
	// The active day's file may not exist yet; it still counts toward the
	// retained days.
	byDay[w.day] = nil
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		day, ok := parseLogFileDay(entry.Name())
		if !ok {
			continue
		}
		byDay[day] = append(byDay[day], entry.Name())
	}
	if len(byDay) <= w.maxDays {
		return nil
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	var firstErr error
	for _, day := range days[w.maxDays:] {
		for _, name := range byDay[day] {
			if err := os.Remove(filepath.Join(w.dir, name)); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// parseLogFileDay extracts the calendar day from a log file name. It accepts
// the unpadded names this writer produces, zero padded variants, and the
// timestamped or gzipped names lumberjack gives to chunked pieces.
func parseLogFileDay(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, logFilePrefix) || !strings.Contains(name, logFileExt) {
		return time.Time{}, false
	}

	parts := strings.SplitN(strings.TrimPrefix(name, logFilePrefix), "-", 4)
	if len(parts) < 3 {
		return time.Time{}, false
	}
	dayStr := parts[2]
	if i := strings.IndexByte(dayStr, '.'); i >= 0 {
		dayStr = dayStr[:i]
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// Close releases the active day's file. The writer rolls a new one if it is
// written to again.
func (w *dailyWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
