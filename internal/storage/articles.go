package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindora/mindora/internal/models"
)

// ListArticles возвращает статьи поддержки, новые первыми.
// Пустая category означает отсутствие фильтра.
func (s *Storage) ListArticles(ctx context.Context, category string) ([]models.Article, error) {
	const op = "storage.ListArticles"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, title, content, category, created_at
			  FROM support_articles
			  WHERE ($1::text = '' OR category = $1::text)
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Article, 0)
	for rows.Next() {
		var (
			a        models.Article
			category sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &category, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.Category = stringPtr(category)
		result = append(result, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListCategories возвращает различные непустые категории статей.
func (s *Storage) ListCategories(ctx context.Context) ([]string, error) {
	const op = "storage.ListCategories"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT DISTINCT category
			  FROM support_articles
			  WHERE category IS NOT NULL
			  ORDER BY category`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountArticles возвращает количество статей в каталоге.
func (s *Storage) CountArticles(ctx context.Context) (int, error) {
	const op = "storage.CountArticles"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM support_articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// InsertArticles добавляет статьи одной транзакцией.
func (s *Storage) InsertArticles(ctx context.Context, articles []models.Article) error {
	const op = "storage.InsertArticles"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO support_articles (title, content, category) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, a := range articles {
		if _, err := stmt.ExecContext(ctx, a.Title, a.Content, nullString(a.Category)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
