package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteErrorEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	err := NewError("not_found", "no such\npillar", http.StatusNotFound).
		WithDetails(map[string]any{"slug": "x"})

	WriteError(context.Background(), rr, err)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Equal(t, "not_found", payload["error"])
	require.Equal(t, "no such pillar", payload["message"])
	require.EqualValues(t, http.StatusNotFound, payload["status"])
	require.Equal(t, "x", payload["slug"])
	require.NotContains(t, payload, "request_id")
}

func TestNewErrorDefaultsStatus(t *testing.T) {
	err := NewError("boom", strings.Repeat("a", 600), 0)
	require.Equal(t, http.StatusInternalServerError, err.Status)
	require.Len(t, err.Message, 512)
}

func TestWriteEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteEnvelope(rr, map[string]string{"title": "x"}, false, errors.New("store down"))

	require.Equal(t, http.StatusOK, rr.Code)
	var env struct {
		Data    map[string]string `json:"data"`
		Loading bool              `json:"loading"`
		Error   string            `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "x", env.Data["title"])
	require.False(t, env.Loading)
	require.Equal(t, "store down", env.Error)

	rr = httptest.NewRecorder()
	WriteEnvelope(rr, []int{}, false, nil)
	require.NotContains(t, rr.Body.String(), `"error"`)
}
