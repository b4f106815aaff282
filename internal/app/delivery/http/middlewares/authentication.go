package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Authenticate requires a Bearer token whose session is still alive in
// redis. The decoded session data is placed on the request context for
// controllers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix)
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		raw, err := m.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID))
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if raw == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		sessionData := new(requests.SessionData)
		if err := json.Unmarshal([]byte(raw), sessionData); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		reqCtx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// SessionFromContext is the controller-side accessor for what Authenticate
// stored.
func SessionFromContext(ctx context.Context) (*requests.SessionData, bool) {
	sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*requests.SessionData)
	return sessionData, ok
}
