package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgver/internal/adapters/logger"
)

func TestPlainHandler_Handle(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h slog.Handler) slog.Handler
		level slog.Level
		msg   string
		attrs []any
		want  string
	}{
		{
			name:  "info level",
			level: slog.LevelInfo,
			msg:   "information message",
			want:  "information message\n",
		},
		{
			name:  "warn level",
			level: slog.LevelWarn,
			msg:   "warning message",
			want:  "! warning message\n",
		},
		{
			name:  "error level",
			level: slog.LevelError,
			msg:   "error message",
			want:  "✗ error message\n",
		},
		{
			name:  "debug level filtered",
			level: slog.LevelDebug,
			msg:   "debug message",
			want:  "",
		},
		{
			name:  "record attributes",
			level: slog.LevelInfo,
			msg:   "span finished",
			attrs: []any{"span", "render", "package_count", 4},
			want:  "span finished span=render package_count=4\n",
		},
		{
			name: "handler attrs with record attrs",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("hkey", "hval")})
			},
			level: slog.LevelInfo,
			msg:   "combined",
			attrs: []any{"rkey", "rval"},
			want:  "combined hkey=hval rkey=rval\n",
		},
		{
			name: "nested groups",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("a").WithGroup("b")
			},
			level: slog.LevelInfo,
			msg:   "grouped",
			attrs: []any{"k", "v"},
			want:  "grouped a.b.k=v\n",
		},
		{
			name: "empty group name is ignored",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("")
			},
			level: slog.LevelInfo,
			msg:   "ungrouped",
			attrs: []any{"k", "v"},
			want:  "ungrouped k=v\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			var handler slog.Handler = logger.NewPlainHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
			if tt.setup != nil {
				handler = tt.setup(handler)
			}

			slog.New(handler).Log(t.Context(), tt.level, tt.msg, tt.attrs...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		recordLevel  slog.Level
		wantEnabled  bool
	}{
		{name: "debug below info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelDebug, wantEnabled: false},
		{name: "info at info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelInfo, wantEnabled: true},
		{name: "error above info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelError, wantEnabled: true},
		{name: "warn at error", handlerLevel: slog.LevelError, recordLevel: slog.LevelWarn, wantEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handlerLevel})
			assert.Equal(t, tt.wantEnabled, handler.Enabled(t.Context(), tt.recordLevel))
		})
	}
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelInfo})
	})
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	handler := logger.NewPlainHandler(&brokenWriter{}, nil)
	require.NotPanics(t, func() {
		slog.New(handler).Info("this will fail to write")
	})
}

// brokenWriter simulates a writer that always returns an error.
type brokenWriter struct{}

func (bw *brokenWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
