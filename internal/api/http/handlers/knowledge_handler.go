package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equipment-support/internal/api/dto"
	"github.com/spec-kit/equipment-support/internal/service"
)

// KnowledgeHandler serves knowledge-base reference content.
type KnowledgeHandler struct {
	service *service.KnowledgeService
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(knowledgeService *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{service: knowledgeService}
}

// List GET /api/knowledge-base.
func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	articles, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewKnowledgeBaseArticleResponses(articles)})
}
