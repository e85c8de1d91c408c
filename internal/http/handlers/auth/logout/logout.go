// Package logout реализует выход пользователя. Повторный выход не является ошибкой.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/http/response"
	"github.com/mindora/mindora/internal/lib/sl"
)

// Service уничтожает сессию.
type Service interface {
	Logout(ctx context.Context, sessionID string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
	cookie  middlewarectx.SessionCookie
}

func New(log *slog.Logger, service Service, cookie middlewarectx.SessionCookie) *Handler {
	return &Handler{
		log:     log,
		service: service,
		cookie:  cookie,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Tags Auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := h.cookie.Read(r)
	h.cookie.Clear(w)

	if err := h.service.Logout(r.Context(), id); err != nil {
		log.Error("failed to destroy session", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to log out"))
		return
	}

	render.JSON(w, r, response.Message("Logout successful"))
}
