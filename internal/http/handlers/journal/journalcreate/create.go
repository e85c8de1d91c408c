// Package journalcreate реализует HTTP-обработчик создания записи дневника.
package journalcreate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/http/response"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

type Service interface {
	Create(ctx context.Context, userID int64, in models.JournalInput) (int64, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить запись дневника
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body models.JournalInput true "Текст обязателен, заголовок и mood_id опциональны"
// @Success 200 {object} response.CreatedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/journal [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.journal.create"

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

	var req models.JournalInput
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info("validation failed", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	id, err := h.service.Create(r.Context(), principal.UserID, req)
	if err != nil {
		log.Error("failed to create journal entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save journal entry"))
		return
	}

	log.Info("journal entry created", slog.Int64("id", id))
	render.JSON(w, r, response.Created(id, "Journal entry saved"))
}
