package sketch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Fatal("default logger should be disabled")
	}
}

func TestSetLoggerReportsDroppedFill(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	s := newTestSession(t, WithTool(ToolBucket))
	started, release := blockFills(s)
	s.RequestFill(Point{1, 1})
	<-started
	s.RequestFill(Point{1, 1})
	s.RequestFill(Point{1, 1})
	close(release)
	waitFills(t, s)

	if !strings.Contains(buf.String(), "fill dropped") {
		t.Fatalf("log output %q", buf.String())
	}
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelWarn) {
		t.Fatal("SetLogger(nil) should restore the silent logger")
	}
}
