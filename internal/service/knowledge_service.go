package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/repository"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

const knowledgeCacheKey = "kb:articles"

// KnowledgeService serves knowledge-base articles. Listings are cached in
// Redis for a short TTL since the content is read-mostly reference data.
type KnowledgeService struct {
	articles repository.KnowledgeRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewKnowledgeService constructs the service. A nil cache client disables
// caching entirely.
func NewKnowledgeService(articles repository.KnowledgeRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		articles: articles,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// List returns all articles, most recently updated first.
func (s *KnowledgeService) List(ctx context.Context) ([]domain.KnowledgeBaseArticle, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	result, err := s.articles.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.storeCache(ctx, result)
	return result, nil
}

func (s *KnowledgeService) fromCache(ctx context.Context) ([]domain.KnowledgeBaseArticle, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, knowledgeCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var articles []domain.KnowledgeBaseArticle
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		return nil, false
	}
	return articles, true
}

func (s *KnowledgeService) storeCache(ctx context.Context, articles []domain.KnowledgeBaseArticle) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(articles)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, knowledgeCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("knowledge cache write failed", zap.Error(err))
	}
}
