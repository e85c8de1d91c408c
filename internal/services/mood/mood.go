// Package mood содержит бизнес-логику записей настроения и статистики по ним.
package mood

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindora/mindora/internal/lib/metrics"
	"github.com/mindora/mindora/internal/models"
)

const (
	// ListLimit максимальное число записей в списке.
	ListLimit = 30
	// DefaultPeriod период статистики в днях по умолчанию.
	DefaultPeriod = 7
	// MaxPeriod наибольший допустимый период статистики в днях.
	MaxPeriod = 365
)

// Repository определяет методы для работы с записями настроения в хранилище.
// Все операции ограничены владельцем userID.
type Repository interface {
	CreateMood(ctx context.Context, userID int64, in models.MoodInput) (int64, error)
	ListMoods(ctx context.Context, userID int64, limit int) ([]models.Mood, error)
	UpdateMood(ctx context.Context, userID, id int64, in models.MoodInput) error
	RemoveMood(ctx context.Context, userID, id int64) error
	MoodStats(ctx context.Context, userID int64, since time.Time) ([]models.DayStats, error)
}

// Service реализует операции над записями настроения.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// WithClock подменяет часы сервиса.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create сохраняет запись настроения пользователя и возвращает её ID.
func (s *Service) Create(ctx context.Context, userID int64, in models.MoodInput) (int64, error) {
	const op = "mood.Create"
	id, err := s.repo.CreateMood(ctx, userID, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	metrics.RecordsCreatedTotal.WithLabelValues("mood").Inc()
	s.log.Info("created mood record", slog.Int64("id", id), slog.Int64("user_id", userID))
	return id, nil
}

// List возвращает не более ListLimit последних записей, новые первыми.
func (s *Service) List(ctx context.Context, userID int64) ([]models.Mood, error) {
	const op = "mood.List"
	moods, err := s.repo.ListMoods(ctx, userID, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if moods == nil {
		moods = []models.Mood{}
	}
	return moods, nil
}

// Update полностью заменяет запись. Чужая или отсутствующая запись даёт models.ErrNotFound.
func (s *Service) Update(ctx context.Context, userID, id int64, in models.MoodInput) error {
	const op = "mood.Update"
	if err := s.repo.UpdateMood(ctx, userID, id, in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет запись пользователя.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	const op = "mood.Delete"
	if err := s.repo.RemoveMood(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Stats возвращает дневную статистику за последние periodDays суток.
func (s *Service) Stats(ctx context.Context, userID int64, periodDays int) ([]models.DayStats, error) {
	const op = "mood.Stats"
	if periodDays <= 0 || periodDays > MaxPeriod {
		return nil, fmt.Errorf("%s: period must be between 1 and %d: %w", op, MaxPeriod, models.ErrValidation)
	}

	since := s.now().Add(-time.Duration(periodDays) * 24 * time.Hour)
	stats, err := s.repo.MoodStats(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats == nil {
		stats = []models.DayStats{}
	}
	return stats, nil
}
