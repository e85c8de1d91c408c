package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindora/mindora/internal/models"
)

// CreateJournalEntry вставляет запись дневника и возвращает её ID.
// MoodID сохраняется как есть, без проверки существования.
func (s *Storage) CreateJournalEntry(ctx context.Context, userID int64, in models.JournalInput) (int64, error) {
	const op = "storage.CreateJournalEntry"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO journal_entries (user_id, title, content, mood_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	if err := s.DB.QueryRowContext(ctx, query,
		userID, nullString(in.Title), in.Content, nullInt64(in.MoodID)).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListJournalEntries возвращает не более limit последних записей, новые первыми.
func (s *Storage) ListJournalEntries(ctx context.Context, userID int64, limit int) ([]models.JournalEntry, error) {
	const op = "storage.ListJournalEntries"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, title, content, mood_id, created_at
			  FROM journal_entries
			  WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.JournalEntry, 0)
	for rows.Next() {
		var (
			item   models.JournalEntry
			title  sql.NullString
			moodID sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &item.UserID, &title, &item.Content,
			&moodID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Title = stringPtr(title)
		if moodID.Valid {
			v := moodID.Int64
			item.MoodID = &v
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateJournalEntry полностью заменяет title, content и mood_id записи владельца.
func (s *Storage) UpdateJournalEntry(ctx context.Context, userID, id int64, in models.JournalInput) error {
	const op = "storage.UpdateJournalEntry"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `UPDATE journal_entries
			  SET title = $1, content = $2, mood_id = $3
			  WHERE id = $4 AND user_id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		nullString(in.Title), in.Content, nullInt64(in.MoodID), id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOne(result, op)
}

// RemoveJournalEntry удаляет запись дневника владельца.
func (s *Storage) RemoveJournalEntry(ctx context.Context, userID, id int64) error {
	const op = "storage.RemoveJournalEntry"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOne(result, op)
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil || *v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
