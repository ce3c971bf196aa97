package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_AddsRoleField(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	var buf bytes.Buffer
	child := Logger{log.Output(&buf)}
	child.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	// must not panic and must not write anywhere
	log.Error().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := base.WithContext(context.Background())

	log := FromContext(ctx)
	log.Info().Msg("from-context")

	assert.Contains(t, buf.String(), "from-context")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	req := httptest.NewRequest("GET", "/all_planets", nil)
	req = req.WithContext(base.WithContext(req.Context()))

	log := FromRequest(req)
	log.Info().Msg("from-request")

	assert.Contains(t, buf.String(), "from-request")
}
