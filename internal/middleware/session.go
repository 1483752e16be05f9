package middleware

import (
	"context"
	"net/http"
	"selfrental/internal/logger"
	"selfrental/internal/reqctx"
	"selfrental/internal/services"

	"go.uber.org/zap"
)

// SessionCookie — имя HTTP-only куки с сессионным токеном.
const SessionCookie = "token"

// SessionAuth пускает дальше только запросы с валидным сессионным токеном
// в куке. Любая невалидность — молчаливый редирект на /login, без
// уточнения причины.
func SessionAuth(tokens *services.TokenService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			logger.WithCtx(r.Context()).Warn("SessionAuth: кука с токеном отсутствует")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		username, email, err := tokens.ParseSession(cookie.Value)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("SessionAuth: неверный или просроченный токен", zap.Error(err))
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), ContextUsername, username)
		ctx = context.WithValue(ctx, ContextEmail, email)
		ctx = reqctx.WithUsername(ctx, username)

		logger.WithCtx(ctx).Debug("SessionAuth: токен валиден", zap.String("username", username))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
