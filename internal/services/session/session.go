// Package session управляет серверными сессиями пользователей.
//
// Идентификатор сессии непрозрачный (UUID v4), сама сессия хранится в Redis
// под ключом "session:<id>". Срок жизни абсолютный: TTL ключа равен
// оставшемуся времени жизни и при обращениях не продлевается, а ExpiresAt
// дополнительно сверяется с часами сервиса.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

const keyPrefix = "session:"

// Store хранилище сессий. Реализуется cache.Cache.
type Store interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Manager создаёт, проверяет и уничтожает сессии.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	log   *slog.Logger
}

// Option настраивает Manager.
type Option func(*Manager)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager создает менеджер сессий с абсолютным временем жизни ttl.
func NewManager(store Store, ttl time.Duration, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		log:   log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create заводит новую сессию для пользователя и возвращает её описание.
func (m *Manager) Create(ctx context.Context, userID int64, username string) (*models.Principal, error) {
	const op = "session.Create"

	id := uuid.NewString()
	now := m.now().UTC()
	s := models.Session{
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Set(ctx, keyPrefix+id, s, m.ttl); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Principal{
		UserID:    userID,
		Username:  username,
		SessionID: id,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

// Resolve находит действующую сессию по идентификатору.
// Отсутствующая или истёкшая сессия даёт models.ErrUnauthenticated.
func (m *Manager) Resolve(ctx context.Context, id string) (*models.Principal, error) {
	const op = "session.Resolve"

	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrUnauthenticated
	}

	var s models.Session
	found, err := m.store.Get(ctx, keyPrefix+id, &s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, models.ErrUnauthenticated
	}

	if !m.now().Before(s.ExpiresAt) {
		if err := m.store.Invalidate(ctx, keyPrefix+id); err != nil {
			m.log.Warn("failed to drop expired session", slog.String("op", op), sl.Err(err))
		}
		return nil, models.ErrUnauthenticated
	}

	return &models.Principal{
		UserID:    s.UserID,
		Username:  s.Username,
		SessionID: id,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

// Destroy удаляет сессию. Повторный вызов не является ошибкой.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	const op = "session.Destroy"
	if id == "" {
		return nil
	}
	if err := m.store.Invalidate(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
