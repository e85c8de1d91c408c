// Package support реализует публичный каталог статей поддержки с кешированием в Redis.
package support

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindora/mindora/internal/lib/metrics"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

const (
	cachePrefix   = "support:"
	articlesKey   = cachePrefix + "articles:"
	categoriesKey = cachePrefix + "categories"
)

// Repository определяет методы для работы со статьями в хранилище.
type Repository interface {
	ListArticles(ctx context.Context, category string) ([]models.Article, error)
	ListCategories(ctx context.Context) ([]string, error)
	CountArticles(ctx context.Context) (int, error)
	InsertArticles(ctx context.Context, articles []models.Article) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// InvalidatePrefix удаляет все ключи с заданным префиксом.
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Service отдаёт каталог статей. Ошибки кеша логируются и не мешают чтению из базы.
type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// List возвращает статьи, новые первыми. Пустая category означает все статьи.
func (s *Service) List(ctx context.Context, category string) ([]models.Article, error) {
	const op = "support.List"
	key := articlesKey + category

	var articles []models.Article
	if s.fromCache(ctx, key, &articles) {
		return articles, nil
	}

	articles, err := s.repo.ListArticles(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if articles == nil {
		articles = []models.Article{}
	}
	s.toCache(ctx, key, articles)
	return articles, nil
}

// Categories возвращает отсортированный список различных категорий.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	const op = "support.Categories"

	var categories []string
	if s.fromCache(ctx, categoriesKey, &categories) {
		return categories, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if categories == nil {
		categories = []string{}
	}
	s.toCache(ctx, categoriesKey, categories)
	return categories, nil
}

// SeedDefaults заполняет пустой каталог статьями по умолчанию и сбрасывает кеш.
// Возвращает число добавленных статей.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	const op = "support.SeedDefaults"

	count, err := s.repo.CountArticles(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return 0, nil
	}

	articles := DefaultArticles()
	if err := s.repo.InsertArticles(ctx, articles); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.InvalidatePrefix(ctx, cachePrefix); err != nil {
		s.log.Warn("failed to invalidate catalog cache", slog.String("op", op), sl.Err(err))
	}
	s.log.Info("seeded support articles", slog.Int("count", len(articles)))
	return len(articles), nil
}

func (s *Service) fromCache(ctx context.Context, key string, result any) bool {
	found, err := s.cache.Get(ctx, key, result)
	if err != nil {
		s.log.Warn("catalog cache read failed", slog.String("key", key), sl.Err(err))
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return false
	}
	if !found {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.log.Warn("catalog cache write failed", slog.String("key", key), sl.Err(err))
	}
}
