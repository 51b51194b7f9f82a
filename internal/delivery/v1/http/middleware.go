package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type userIDKey struct{}

// UserIDFromCtx возвращает идентификатор администратора, прошедшего проверку токена.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}

// Authenticator проверяет bearer-токен провайдера идентификации и членство в admins.
type Authenticator struct {
	admins usecase.AdminChecker
	cfg    *cfg.AuthCfg
	logger logger.Logger
}

func NewAuthenticator(admins usecase.AdminChecker, cfg *cfg.AuthCfg, logger logger.Logger) *Authenticator {
	return &Authenticator{admins: admins, cfg: cfg, logger: logger}
}

// RequireAdmin пропускает запрос дальше только для администратора.
// Нет или неверный токен даёт 401, пользователь не из admins получает 403.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.parseToken(r.Header.Get("Authorization"))
		if err != nil {
			writeErr(a.logger, w, r, err)
			return
		}

		ok, err := a.admins.IsAdmin(r.Context(), userID)
		if err != nil {
			writeErr(a.logger, w, r, err)
			return
		}
		if !ok {
			writeErr(a.logger, w, r, e.Wrap("user "+userID.String(), e.ErrForbidden))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

func (a *Authenticator) parseToken(header string) (uuid.UUID, error) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return uuid.Nil, e.Wrap("missing bearer token", e.ErrUnauthorized)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, e.Wrap(fmt.Sprintf("invalid token: %v", err), e.ErrUnauthorized)
	}

	if a.cfg.Issuer != "" && !claims.VerifyIssuer(a.cfg.Issuer, true) {
		return uuid.Nil, e.Wrap("unexpected issuer "+claims.Issuer, e.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, e.Wrap("subject is not a user id", e.ErrUnauthorized)
	}
	return userID, nil
}

// RequestLogger пишет строку доступа на каждый запрос через общий логгер.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.With(
				"request_id", middleware.GetReqID(r.Context()),
				"remote_ip", r.RemoteAddr,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String(),
			).Infof("%s %s", r.Method, r.URL.Path)
		})
	}
}

// cartSessionID читает идентификатор корзины из заголовка X-Cart-Session.
func cartSessionID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get(cartSessionHeader))
	if raw == "" {
		return uuid.Nil, e.ErrMissingCartSession
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, e.Wrap(raw, e.ErrMissingCartSession)
	}
	return id, nil
}
