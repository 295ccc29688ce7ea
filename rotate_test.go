package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFileName(t *testing.T) {
	day := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "server-log-2026-3-7.log", logFileName(day))

	day = time.Date(2026, time.November, 21, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "server-log-2026-11-21.log", logFileName(day))
}

func TestParseLogFileDay(t *testing.T) {
	march7 := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		fileName string
		expected time.Time
		ok       bool
	}{
		{"plain", "server-log-2026-3-7.log", march7, true},
		{"zero padded", "server-log-2026-03-07.log", march7, true},
		{"size chunk", "server-log-2026-3-7-2026-03-07T15-04-05.000.log", march7, true},
		{"compressed chunk", "server-log-2026-3-7-2026-03-07T15-04-05.000.log.gz", march7, true},
		{"wrong prefix", "app-log-2026-3-7.log", time.Time{}, false},
		{"wrong extension", "server-log-2026-3-7.txt", time.Time{}, false},
		{"not a date", "server-log-latest.log", time.Time{}, false},
		{"month out of range", "server-log-2026-13-7.log", time.Time{}, false},
		{"day out of range", "server-log-2026-3-40.log", time.Time{}, false},
		{"missing day", "server-log-2026-3.log", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := parseLogFileDay(tt.fileName)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(day), "got %v", day)
			}
		})
	}
}

func TestDailyWriter_RollsAcrossMidnight(t *testing.T) {
	tmpDir := t.TempDir()

	current := time.Date(2026, time.March, 30, 23, 58, 0, 0, time.Local)
	w := newDailyWriter(tmpDir, 0, 0, false)
	w.now = func() time.Time { return current }
	defer w.Close()

	_, err := w.Write([]byte("before midnight\n"))
	require.NoError(t, err)

	current = time.Date(2026, time.March, 31, 0, 1, 0, 0, time.Local)
	_, err = w.Write([]byte("after midnight\n"))
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(tmpDir, "server-log-2026-3-30.log"))
	require.NoError(t, err)
	assert.Equal(t, "before midnight\n", string(first))

	second, err := os.ReadFile(filepath.Join(tmpDir, "server-log-2026-3-31.log"))
	require.NoError(t, err)
	assert.Equal(t, "after midnight\n", string(second))
}

func TestDailyWriter_SameDayAppends(t *testing.T) {
	tmpDir := t.TempDir()

	current := time.Date(2026, time.June, 2, 9, 0, 0, 0, time.Local)
	w := newDailyWriter(tmpDir, 0, 0, false)
	w.now = func() time.Time { return current }
	defer w.Close()

	_, err := w.Write([]byte("morning\n"))
	require.NoError(t, err)

	current = current.Add(8 * time.Hour)
	_, err = w.Write([]byte("afternoon\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(tmpDir, "server-log-2026-6-2.log"))
	require.NoError(t, err)
	assert.Equal(t, "morning\nafternoon\n", string(content))
}

func TestDailyWriter_PruneOldDays(t *testing.T) {
	tmpDir := t.TempDir()

	seed := []string{
		"server-log-2026-3-27.log",
		"server-log-2026-3-28.log",
		"server-log-2026-3-28-2026-03-28T15-04-05.000.log.gz",
		"server-log-2026-3-29.log",
		"unrelated.txt",
	}
	for _, name := range seed {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644))
	}

	current := time.Date(2026, time.March, 30, 8, 0, 0, 0, time.Local)
	w := newDailyWriter(tmpDir, 2, 0, false)
	w.now = func() time.Time { return current }
	defer w.Close()

	// The first write rolls onto March 30 and prunes everything older than
	// the two most recent days, 30 and 29.
	_, err := w.Write([]byte("today\n"))
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(tmpDir, "server-log-2026-3-27.log"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "server-log-2026-3-28.log"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "server-log-2026-3-28-2026-03-28T15-04-05.000.log.gz"),
		"chunked pieces must go with their day")
	assert.FileExists(t, filepath.Join(tmpDir, "server-log-2026-3-29.log"))
	assert.FileExists(t, filepath.Join(tmpDir, "server-log-2026-3-30.log"))
	assert.FileExists(t, filepath.Join(tmpDir, "unrelated.txt"))
}

func TestDailyWriter_PruneAcrossRolls(t *testing.T) {
	tmpDir := t.TempDir()

	current := time.Date(2026, time.March, 27, 12, 0, 0, 0, time.Local)
	w := newDailyWriter(tmpDir, 2, 0, false)
	w.now = func() time.Time { return current }
	defer w.Close()

	for i := 0; i < 4; i++ {
		_, err := w.Write([]byte("entry\n"))
		require.NoError(t, err)
		current = current.Add(24 * time.Hour)
	}

	assert.NoFileExists(t, filepath.Join(tmpDir, "server-log-2026-3-27.log"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "server-log-2026-3-28.log"))
	assert.FileExists(t, filepath.Join(tmpDir, "server-log-2026-3-29.log"))
	assert.FileExists(t, filepath.Join(tmpDir, "server-log-2026-3-30.log"))
}

func TestDailyWriter_ZeroRetentionKeepsEverything(t *testing.T) {
	tmpDir := t.TempDir()

	current := time.Date(2026, time.March, 27, 12, 0, 0, 0, time.Local)
	w := newDailyWriter(tmpDir, 0, 0, false)
	w.now = func() time.Time { return current }
	defer w.Close()

	for i := 0; i < 4; i++ {
		_, err := w.Write([]byte("entry\n"))
		require.NoError(t, err)
		current = current.Add(24 * time.Hour)
	}

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestDailyWriter_Probe(t *testing.T) {
	t.Run("creates the day file", func(t *testing.T) {
		tmpDir := t.TempDir()
		w := newDailyWriter(tmpDir, 0, 0, false)
		defer w.Close()

		require.NoError(t, w.probe())
		assert.FileExists(t, filepath.Join(tmpDir, logFileName(time.Now())))
	})

	t.Run("fails on a missing directory", func(t *testing.T) {
		w := newDailyWriter(filepath.Join(t.TempDir(), "absent", "deeper"), 0, 0, false)
		assert.Error(t, w.probe())
	})
}

func TestDailyWriter_WriteAfterClose(t *testing.T) {
	tmpDir := t.TempDir()

	w := newDailyWriter(tmpDir, 0, 0, false)
	_, err := w.Write([]byte("one\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// A closed writer rolls a fresh handle on the next write.
	_, err = w.Write([]byte("two\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := os.ReadFile(filepath.Join(tmpDir, logFileName(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(content), "one")
	assert.Contains(t, string(content), "two")
}
