// Package auth содержит бизнес-логику регистрации, входа и выхода пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/mindora/mindora/internal/lib/metrics"
	"github.com/mindora/mindora/internal/lib/password"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)
	// UserExists проверяет, заняты ли имя пользователя или почта.
	UserExists(ctx context.Context, username, email string) (bool, error)
	// GetUserByLogin ищет пользователя по имени или почте.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

// SessionManager создает и уничтожает сессии.
type SessionManager interface {
	Create(ctx context.Context, userID int64, username string) (*models.Principal, error)
	Destroy(ctx context.Context, id string) error
}

// Service отвечает за регистрацию, вход и выход.
type Service struct {
	users    UserRepository
	sessions SessionManager
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, sessions SessionManager, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// Register создает пользователя и сразу открывает для него сессию.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (*models.Principal, error) {
	const op = "auth.Register"

	exists, err := s.users.UserExists(ctx, username, email)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate").Inc()
		return nil, models.ErrDuplicateUser
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		// bcrypt принимает не больше 72 байт
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid").Inc()
			return nil, fmt.Errorf("%s: %w: %w", op, models.ErrPasswordTooLong, models.ErrValidation)
		}
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.users.RegisterUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate").Inc()
			return nil, models.ErrDuplicateUser
		}
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user registered", slog.Int64("user_id", id))

	principal, err := s.sessions.Create(ctx, id, username)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return principal, nil
}

// Login проверяет пароль и открывает сессию. login может быть именем или почтой.
// Неизвестный пользователь и неверный пароль неразличимы: оба дают
// models.ErrInvalidCredentials, а для неизвестного пользователя bcrypt
// всё равно выполняется.
func (s *Service) Login(ctx context.Context, login, rawPassword string) (*models.Principal, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			password.CompareDummy(rawPassword)
			metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
			return nil, models.ErrInvalidCredentials
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
		return nil, models.ErrInvalidCredentials
	}

	principal, err := s.sessions.Create(ctx, user.ID, user.Username)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return principal, nil
}

// Logout уничтожает сессию. Пустой идентификатор допустим.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	const op = "auth.Logout"
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		s.log.Warn("failed to destroy session", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
