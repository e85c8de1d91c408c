package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindora/mindora/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его ID.
// Нарушение уникальности username или email возвращается как models.ErrDuplicateUser.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.RegisterUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var newID int64
	query := `INSERT INTO users (username, email, password_hash)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, models.ErrDuplicateUser)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UserExists проверяет, занят ли username или email.
func (s *Storage) UserExists(ctx context.Context, username, email string) (bool, error) {
	const op = "storage.UserExists"
	if err := checkCtx(ctx, op); err != nil {
		return false, err
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM users WHERE username = $1 OR email = $2
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// GetUserByLogin ищет пользователя по username или email.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, username, email, password_hash, created_at
			  FROM users
			  WHERE username = $1 OR email = $1
			  ORDER BY id
			  LIMIT 1`
	return s.scanUser(ctx, op, query, login)
}

// GetUser возвращает пользователя по ID.
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, username, email, password_hash, created_at
			  FROM users
			  WHERE id = $1`
	return s.scanUser(ctx, op, query, id)
}

func (s *Storage) scanUser(ctx context.Context, op, query string, arg any) (*models.User, error) {
	u := &models.User{}
	err := s.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
