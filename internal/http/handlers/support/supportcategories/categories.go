package supportcategories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mindora/mindora/internal/http/response"
	"github.com/mindora/mindora/internal/lib/sl"
)

type Service interface {
	Categories(ctx context.Context) ([]string, error)
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
// @Summary Категории статей поддержки
// @Tags Support
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} response.ErrorResponse
// @Router /api/support/categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.support.categories"

	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.log.Error("failed to list categories",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load categories"))
		return
	}

	render.JSON(w, r, categories)
}
