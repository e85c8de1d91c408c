// Package moodstats отдаёт дневную статистику настроения за период.
package moodstats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/http/response"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
	"github.com/mindora/mindora/internal/services/mood"
)

var invalidPeriod = fmt.Sprintf("period must be an integer between 1 and %d", mood.MaxPeriod)

type Service interface {
	Stats(ctx context.Context, userID int64, periodDays int) ([]models.DayStats, error)
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
// @Summary Статистика настроения
// @Description Средние настроение и энергия по дням (UTC) за последние period суток, по возрастанию даты.
// @Tags Moods
// @Produce json
// @Param period query int false "Период в днях (1-365), по умолчанию 7"
// @Success 200 {array} models.DayStats
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/moods/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mood.stats"

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

	period := mood.DefaultPeriod
	if raw := r.URL.Query().Get("period"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			log.Info("invalid period", slog.String("period", raw))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(invalidPeriod))
			return
		}
		period = p
	}

	stats, err := h.service.Stats(r.Context(), principal.UserID, period)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(invalidPeriod))
			return
		}
		log.Error("failed to compute stats", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load stats"))
		return
	}

	render.JSON(w, r, stats)
}
