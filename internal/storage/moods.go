package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mindora/mindora/internal/models"
)

// CreateMood вставляет запись настроения пользователя и возвращает её ID.
func (s *Storage) CreateMood(ctx context.Context, userID int64, in models.MoodInput) (int64, error) {
	const op = "storage.CreateMood"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	tags, err := encodeTags(in.Tags)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO moods (user_id, mood, energy, note, tags)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	if err = s.DB.QueryRowContext(ctx, query,
		userID, in.Mood, in.Energy, nullString(in.Note), tags).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMoods возвращает не более limit последних записей пользователя, новые первыми.
func (s *Storage) ListMoods(ctx context.Context, userID int64, limit int) ([]models.Mood, error) {
	const op = "storage.ListMoods"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, mood, energy, note, tags, created_at
			  FROM moods
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

	result := make([]models.Mood, 0)
	for rows.Next() {
		var (
			item models.Mood
			note sql.NullString
			tags sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.Mood, &item.Energy,
			&note, &tags, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Note = stringPtr(note)
		if item.Tags, err = decodeTags(tags); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMood полностью заменяет изменяемые поля записи. Запись другого
// пользователя или несуществующая запись дают models.ErrNotFound.
func (s *Storage) UpdateMood(ctx context.Context, userID, id int64, in models.MoodInput) error {
	const op = "storage.UpdateMood"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	tags, err := encodeTags(in.Tags)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE moods
			  SET mood = $1, energy = $2, note = $3, tags = $4
			  WHERE id = $5 AND user_id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		in.Mood, in.Energy, nullString(in.Note), tags, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOne(result, op)
}

// RemoveMood удаляет запись настроения владельца.
func (s *Storage) RemoveMood(ctx context.Context, userID, id int64) error {
	const op = "storage.RemoveMood"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	query := `DELETE FROM moods WHERE id = $1 AND user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOne(result, op)
}

// MoodStats группирует записи пользователя, созданные не раньше since,
// по календарным дням (UTC) и считает средние значения и количество.
func (s *Storage) MoodStats(ctx context.Context, userID int64, since time.Time) ([]models.DayStats, error) {
	const op = "storage.MoodStats"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT to_char((created_at AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS day,
			      AVG(mood)::float8,
			      AVG(energy)::float8,
			      COUNT(*)
			  FROM moods
			  WHERE user_id = $1 AND created_at >= $2
			  GROUP BY day
			  ORDER BY day ASC`
	rows, err := s.DB.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.DayStats, 0)
	for rows.Next() {
		var d models.DayStats
		if err := rows.Scan(&d.Date, &d.AvgMood, &d.AvgEnergy, &d.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func affectedOne(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}

// encodeTags сериализует теги в JSON-строку; nil сохраняется как NULL.
func encodeTags(tags []string) (sql.NullString, error) {
	if tags == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeTags(ns sql.NullString) ([]string, error) {
	if !ns.Valid {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(ns.String), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
