package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/service"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h := newTestHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: want}})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
