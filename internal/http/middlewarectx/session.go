// Package middlewarectx содержит HTTP middleware сервиса и работу с
// контекстом запроса.
//
// SessionLoader читает cookie сессии и, если сессия действительна, кладёт
// models.Principal в контекст. RequireAuth пропускает дальше только запросы
// с Principal, иначе отвечает 401 до обращения к хранилищу.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mindora/mindora/internal/http/response"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// PrincipalKey ключ аутентифицированного пользователя в контексте.
const PrincipalKey Key = "principal"

// WithPrincipal возвращает контекст с пользователем запроса.
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFrom достаёт пользователя запроса из контекста.
func PrincipalFrom(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*models.Principal)
	return p, ok && p != nil
}

// SessionResolver проверяет идентификатор сессии.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (*models.Principal, error)
}

// SessionCookie параметры cookie сессии.
type SessionCookie struct {
	Name   string
	Secure bool
}

// Read возвращает идентификатор сессии из запроса или пустую строку.
func (c SessionCookie) Read(r *http.Request) string {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Set выставляет cookie для сессии p.
func (c SessionCookie) Set(w http.ResponseWriter, p *models.Principal) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    p.SessionID,
		Path:     "/",
		Expires:  p.ExpiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear удаляет cookie сессии у клиента.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionLoader возвращает middleware, который восстанавливает Principal по cookie.
// Отсутствующая или недействительная сессия не является ошибкой.
func SessionLoader(log *slog.Logger, sessions SessionResolver, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionLoader"

			id := cookie.Read(r)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := sessions.Resolve(r.Context(), id)
			if err != nil {
				if errors.Is(err, models.ErrUnauthenticated) {
					next.ServeHTTP(w, r)
					return
				}
				log.Error("failed to resolve session",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err),
				)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireAuth отклоняет запросы без действующей сессии с кодом 401.
func RequireAuth(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFrom(r.Context()); !ok {
				log.Info("unauthenticated request rejected",
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(models.ErrUnauthenticated.Error()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
