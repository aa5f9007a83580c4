package telemetry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInit_NoPath(t *testing.T) {
	shutdown, err := Init(context.Background(), "test", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewProvider_WritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewProvider("savi-bootstrap", &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "scaffold.step")
	span.SetAttributes(attribute.String("step.name", "reset"))
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name": "scaffold.step"`)
	assert.Contains(t, buf.String(), "reset")
}

func TestInit_TraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	shutdown, err := Init(context.Background(), "savi-bootstrap", path)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(context.Background(), "savi-bootstrap", filepath.Join(t.TempDir(), "missing", "trace.json"))
	assert.Error(t, err)
}
