package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pkgver/internal/adapters/telemetry"
	"go.trai.ch/pkgver/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged []string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test-bridge").Start(context.Background(), "build_versions")
	span.End()

	if assert.Len(t, logged, 1) {
		assert.Contains(t, logged[0], "span build_versions finished in ")
	}
}

func TestBridge_OnEndError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var warned string
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		warned = msg
	})

	shutdown := telemetry.Install(mockLogger)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracer("test-bridge")

	_, span := tracer.Start(context.Background(), "write")
	span.SetAttribute("artifact_path", "/p/Versions.go")
	span.RecordError(errors.New("permission denied"))
	span.End()

	assert.Contains(t, warned, "span write finished in ")
	assert.Contains(t, warned, "artifact_path=/p/Versions.go")
	assert.Contains(t, warned, "error=permission denied")
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	assert.NotPanics(t, func() {
		_, span := tp.Tracer("test").Start(context.Background(), "test")
		span.End()
	})
}

func TestFormatSpan(t *testing.T) {
	got := telemetry.FormatSpan("render", 1500*time.Microsecond, map[string]string{
		"package_count": "4",
		"artifact_path": "/p/Versions.go",
	})
	assert.Equal(t, "span render finished in 1.5ms artifact_path=/p/Versions.go package_count=4", got)
}
