// Package login реализует HTTP-обработчик входа пользователя.
//
// Поле username принимает как имя пользователя, так и почту. Неизвестный
// пользователь и неверный пароль дают одинаковый ответ 401.
package login

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

// Request учетные данные для входа.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает бизнес-логику входа.
type Service interface {
	Login(ctx context.Context, login, password string) (*models.Principal, error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger
	service  Service
	cookie   middlewarectx.SessionCookie
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, cookie middlewarectx.SessionCookie) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		cookie:   cookie,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Проверяет имя (или почту) и пароль, открывает сессию (cookie).
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.UserResponse
// @Failure 400 {object} response.ErrorResponse "Не заполнены обязательные поля"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	principal, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			log.Info("invalid credentials")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error(models.ErrInvalidCredentials.Error()))
			return
		}
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to log in"))
		return
	}

	h.cookie.Set(w, principal)
	log.Info("login success", slog.Int64("user_id", principal.UserID))
	render.JSON(w, r, response.UserResponse{
		ID:       principal.UserID,
		Username: principal.Username,
		Message:  "Login successful",
	})
}
