package journallist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/http/response"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

type Service interface {
	List(ctx context.Context, userID int64) ([]models.JournalEntry, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей дневника
// @Description Не более 50 последних записей, новые первыми.
// @Tags Journal
// @Produce json
// @Success 200 {array} models.JournalEntry
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/journal [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.journal.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	principal, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error(models.ErrUnauthenticated.Error()))
		return
	}

	entries, err := h.service.List(r.Context(), principal.UserID)
	if err != nil {
		log.Error("failed to list journal entries", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load journal"))
		return
	}

	render.JSON(w, r, entries)
}
