package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// KnowledgeRepository reads knowledge-base reference content.
type KnowledgeRepository interface {
	List(ctx context.Context) ([]domain.KnowledgeBaseArticle, error)
}

type knowledgeRepository struct {
	pool *pgxpool.Pool
}

// NewKnowledgeRepository instantiates repository.
func NewKnowledgeRepository(pool *pgxpool.Pool) KnowledgeRepository {
	return &knowledgeRepository{pool: pool}
}

func (r *knowledgeRepository) List(ctx context.Context) ([]domain.KnowledgeBaseArticle, error) {
	const query = `
        SELECT id, title, content, category, read_time, updated_at
        FROM knowledge_base_articles
        ORDER BY updated_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.KnowledgeBaseArticle
	for rows.Next() {
		var article domain.KnowledgeBaseArticle
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.Category,
			&article.ReadTimeMinutes,
			&article.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, article)
	}
	return result, rows.Err()
}
