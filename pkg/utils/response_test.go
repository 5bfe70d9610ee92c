package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithError(rr, http.StatusBadRequest, "Bad payload")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":false,"reason":"Bad payload"}`, rr.Body.String())
}

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, http.StatusOK, map[string]any{"ok": true, "withdrawable": 10})

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(10), body["withdrawable"])
}

func TestRespondWithJSON_NoContent(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithError(rr, http.StatusNoContent, "Withdrawals not found")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
