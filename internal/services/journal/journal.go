// Package journal содержит бизнес-логику записей дневника.
package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mindora/mindora/internal/lib/metrics"
	"github.com/mindora/mindora/internal/models"
)

// ListLimit максимальное число записей в списке.
const ListLimit = 50

// Repository определяет методы для работы с дневником в хранилище.
type Repository interface {
	CreateJournalEntry(ctx context.Context, userID int64, in models.JournalInput) (int64, error)
	ListJournalEntries(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, userID, id int64, in models.JournalInput) error
	RemoveJournalEntry(ctx context.Context, userID, id int64) error
}

// Service реализует операции над записями дневника.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет запись дневника. MoodID не проверяется на существование.
func (s *Service) Create(ctx context.Context, userID int64, in models.JournalInput) (int64, error) {
	const op = "journal.Create"
	id, err := s.repo.CreateJournalEntry(ctx, userID, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	metrics.RecordsCreatedTotal.WithLabelValues("journal").Inc()
	s.log.Info("created journal entry", slog.Int64("id", id), slog.Int64("user_id", userID))
	return id, nil
}

// List возвращает не более ListLimit последних записей пользователя.
func (s *Service) List(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	const op = "journal.List"
	entries, err := s.repo.ListJournalEntries(ctx, userID, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return entries, nil
}

// Update полностью заменяет запись дневника.
func (s *Service) Update(ctx context.Context, userID, id int64, in models.JournalInput) error {
	const op = "journal.Update"
	if err := s.repo.UpdateJournalEntry(ctx, userID, id, in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет запись дневника.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	const op = "journal.Delete"
	if err := s.repo.RemoveJournalEntry(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
