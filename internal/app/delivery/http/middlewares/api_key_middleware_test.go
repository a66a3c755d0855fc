package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAPIKeyAuth(t *testing.T) {
	hash, err := utils.HashAPIKey("admin-secret")
	assert.NoError(t, err)

	m := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{AdminAPIKeyHash: hash},
		},
	}

	var reachedNext bool
	handler := m.APIKeyAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reachedNext = true
		authed, _ := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH).(bool)
		assert.True(t, authed)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid key passes through", func(t *testing.T) {
		reachedNext = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/2025-11-26", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "admin-secret")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.True(t, reachedNext)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing key is unauthorized", func(t *testing.T) {
		reachedNext = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/2025-11-26", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, reachedNext)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key is unauthorized", func(t *testing.T) {
		reachedNext = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/2025-11-26", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "not-the-key")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, reachedNext)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
