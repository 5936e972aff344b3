package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func resetProvider(t *testing.T) {
	t.Helper()
	providerOnce = sync.Once{}
	providerErr = nil
	provider = nil
	output = nil
}

func TestSpans(t *testing.T) {
	resetProvider(t)
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("cpu-scheduler", "test", exporter))

	_, span := StartSpan(context.Background(), "schedule rr")
	span.WithString("algorithm", "rr").WithAttributes(map[string]int{"processes": 3, "time_quantum": 2})
	span.End(nil)

	_, failed := StartSpan(context.Background(), "schedule fcfs")
	failed.End(errors.New("no processes to schedule"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "schedule rr", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Len(t, spans[0].Attributes, 3)
	assert.Equal(t, codes.Error, spans[1].Status.Code)

	var nilSpan *Span
	nilSpan.WithString("k", "v").End(nil)

	assert.NotNil(t, provider)
	require.NoError(t, Shutdown(context.Background()))
}


func TestInit_ClosesOutputOnShutdown(t *testing.T) {
	resetProvider(t)
	path := filepath.Join(t.TempDir(), "traces.json")
	require.NoError(t, Init("cpu-scheduler", "test", path))
	require.NotNil(t, output)
	f, ok := output.(*os.File)
	require.True(t, ok)

	_, span := StartSpan(context.Background(), "schedule sjf")
	span.End(nil)

	require.NoError(t, Shutdown(context.Background()))
	assert.Nil(t, output)
	_, err := f.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "schedule sjf")
}

func TestInit_SecondFileIsClosed(t *testing.T) {
	resetProvider(t)
	require.NoError(t, InitWithExporter("cpu-scheduler", "test", tracetest.NewInMemoryExporter()))

	require.NoError(t, Init("cpu-scheduler", "test", filepath.Join(t.TempDir(), "unused.json")))
	assert.Nil(t, output)
	require.NoError(t, Shutdown(context.Background()))
}
