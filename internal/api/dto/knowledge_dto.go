package dto

import (
	"time"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// KnowledgeBaseArticleResponse mirrors the stored article.
type KnowledgeBaseArticleResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	ReadTime  int       `json:"readTime"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewKnowledgeBaseArticleResponses maps a list of domain records.
func NewKnowledgeBaseArticleResponses(articles []domain.KnowledgeBaseArticle) []KnowledgeBaseArticleResponse {
	items := make([]KnowledgeBaseArticleResponse, 0, len(articles))
	for _, article := range articles {
		items = append(items, KnowledgeBaseArticleResponse{
			ID:        article.ID,
			Title:     article.Title,
			Content:   article.Content,
			Category:  string(article.Category),
			ReadTime:  article.ReadTimeMinutes,
			UpdatedAt: article.UpdatedAt,
		})
	}
	return items
}
