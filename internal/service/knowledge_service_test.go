package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/equipment-support/internal/domain"
)

func TestKnowledgeListCachesInRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := &fakeKnowledgeRepo{articles: []domain.KnowledgeBaseArticle{
		{ID: 1, Title: "Pump troubleshooting", Category: domain.ArticleCategoryTroubleshooting, ReadTimeMinutes: 3, UpdatedAt: time.Now()},
	}}
	svc := NewKnowledgeService(repo, client, time.Minute, zap.NewNop())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Title, second[0].Title)

	// second call was served from cache
	assert.Equal(t, 1, repo.calls)
}

func TestKnowledgeListCacheExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := &fakeKnowledgeRepo{articles: []domain.KnowledgeBaseArticle{
		{ID: 1, Title: "Monitor dropouts", Category: domain.ArticleCategoryNetwork, ReadTimeMinutes: 4, UpdatedAt: time.Now()},
	}}
	svc := NewKnowledgeService(repo, client, time.Second, zap.NewNop())

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestKnowledgeListWithoutCacheClient(t *testing.T) {
	repo := &fakeKnowledgeRepo{articles: []domain.KnowledgeBaseArticle{
		{ID: 1, Title: "PM checklist", Category: domain.ArticleCategoryMaintenance, ReadTimeMinutes: 6, UpdatedAt: time.Now()},
	}}
	svc := NewKnowledgeService(repo, nil, time.Minute, zap.NewNop())

	articles, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
