package domain

import "time"

// ArticleCategory groups knowledge-base articles on the dashboard.
type ArticleCategory string

const (
	ArticleCategoryTroubleshooting ArticleCategory = "troubleshooting"
	ArticleCategoryNetwork         ArticleCategory = "network"
	ArticleCategoryMaintenance     ArticleCategory = "maintenance"
	ArticleCategoryOther           ArticleCategory = "other"
)

// KnowledgeBaseArticle is read-mostly reference content.
type KnowledgeBaseArticle struct {
	ID              int64
	Title           string
	Content         string
	Category        ArticleCategory
	ReadTimeMinutes int
	UpdatedAt       time.Time
}
