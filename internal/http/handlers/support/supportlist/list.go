// Package supportlist отдаёт публичный каталог статей поддержки.
package supportlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mindora/mindora/internal/http/response"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

type Service interface {
	List(ctx context.Context, category string) ([]models.Article, error)
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
// @Summary Статьи поддержки
// @Description Все статьи, новые первыми. Доступно без входа.
// @Tags Support
// @Produce json
// @Param category query string false "Точное название категории"
// @Success 200 {array} models.Article
// @Failure 500 {object} response.ErrorResponse
// @Router /api/support [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.support.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	articles, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Error("failed to list articles", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load articles"))
		return
	}

	render.JSON(w, r, articles)
}
