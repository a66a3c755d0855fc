package middlewares

import (
	"context"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/exceptions"
	"lavanderia-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// APIKeyAuth protects the admin surface. The presented key is compared
// against the bcrypt hash from configuration, so the plain key never lives
// in the process environment.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.AdminAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)

		m.Log.Info("API key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
