package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
// @Summary List categories
// @Description Return the fixed discussion categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// GetCategoryForums handles GET /api/categories/:id/forums
// @Summary List forums in a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.Forum
// @Failure 404 {object} object{error=string}
// @Router /categories/{id}/forums [get]
func (s *Server) GetCategoryForums(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	limit, offset := parsePagination(c)
	forums, err := s.forumService.ListForumsByCategory(c.Context(), categoryID, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"forums": forums})
}
