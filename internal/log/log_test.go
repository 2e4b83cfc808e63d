package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	t.Cleanup(cleanup)

	l := current()
	l.now = func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) }
	return &buf
}

func TestLogFormat(t *testing.T) {
	buf := capture(t)

	Info(CatFile, "saved", "path", "a.txt", "runes", 12)

	want := "2026-01-02T15:04:05 [INFO] [file] saved session=" + SessionID() + " path=a.txt runes=12\n"
	require.Equal(t, want, buf.String())
}

func TestLogSessionIDIsUUID(t *testing.T) {
	capture(t)

	_, err := uuid.Parse(SessionID())
	require.NoError(t, err)
}

func TestLogMinLevel(t *testing.T) {
	buf := capture(t)

	Debug(CatInput, "hidden")
	require.Empty(t, buf.String(), "debug is below the default level")

	SetMinLevel(LevelDebug)
	Debug(CatInput, "shown")
	require.Contains(t, buf.String(), "[DEBUG] [input] shown")

	buf.Reset()
	SetMinLevel(LevelError)
	Warn(CatInput, "hidden")
	Error(CatInput, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[ERROR] [input] shown")
}

func TestLogDisabled(t *testing.T) {
	buf := capture(t)

	SetEnabled(false)
	Error(CatApp, "dropped")
	SetEnabled(true)
	Error(CatApp, "kept")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")
}

func TestErrorErr(t *testing.T) {
	buf := capture(t)

	ErrorErr(CatConfig, "load failed", errors.New("boom"), "path", "x.toml")
	ErrorErr(CatConfig, "nil error", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "path=x.toml error=boom"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], "error=<nil>"), lines[1])
}

func TestOddFields(t *testing.T) {
	buf := capture(t)

	Info(CatEditor, "odd", "a", 1, "orphan")

	require.True(t, strings.HasSuffix(buf.String(), " a=1 orphan=<missing>\n"), buf.String())
}

func TestUninitializedIsNoOp(t *testing.T) {
	setDefault(nil)

	require.NotPanics(t, func() {
		Info(CatApp, "nobody listening")
		SetMinLevel(LevelDebug)
		SetEnabled(false)
	})
	require.Empty(t, SessionID())
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	Warn(CatApp, "to file")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[WARN] [app] to file")
	require.Empty(t, SessionID(), "cleanup disables logging")
}

func TestInitBadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "scribe.log"))
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
