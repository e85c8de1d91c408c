// Package register реализует HTTP-обработчик регистрации пользователя.
//
// После успешной регистрации пользователь сразу входит в систему: обработчик
// выставляет cookie новой сессии.
package register

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

// Request входные данные регистрации.
type Request struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*models.Principal, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
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
// @Summary Регистрация пользователя
// @Description Создаёт пользователя и открывает для него сессию (cookie).
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные пользователя"
// @Success 200 {object} response.UserResponse
// @Failure 400 {object} response.ErrorResponse "Некорректные данные, слишком длинный пароль или пользователь уже существует"
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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
		log.Error("validator error", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	principal, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			log.Info("user already exists", slog.String("username", req.Username))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(models.ErrDuplicateUser.Error()))
			return
		}
		if errors.Is(err, models.ErrValidation) {
			log.Info("invalid registration data", sl.Err(err))
			msg := "invalid request body"
			if errors.Is(err, models.ErrPasswordTooLong) {
				msg = models.ErrPasswordTooLong.Error()
			}
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msg))
			return
		}
		log.Error("failed to register user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	h.cookie.Set(w, principal)
	log.Info("user registered", slog.Int64("user_id", principal.UserID))
	render.JSON(w, r, response.UserResponse{
		ID:       principal.UserID,
		Username: principal.Username,
		Message:  "Registration successful",
	})
}
