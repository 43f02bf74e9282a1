package server

import (
	"cheznous/internal/models"
	"cheznous/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFavorites handles GET /api/favorites
// @Summary List the caller's favorites
// @Tags favorites
// @Produce json
// @Param type query string false "Filter by type (forum or post)"
// @Success 200 {array} models.Favorite
// @Failure 401 {object} object{error=string}
// @Router /favorites [get]
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	favorites, err := s.favoriteService.ListFavorites(
		c.Context(), currentUserID(c), models.FavoriteType(c.Query("type")))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"favorites": favorites})
}

// ToggleFavorite handles POST /api/favorites/toggle
// @Summary Toggle a favorite
// @Description Adds the favorite when absent, removes it when present.
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body object{type=string,item_id=int} true "Favorite target"
// @Success 200 {object} service.ToggleFavoriteResult
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /favorites/toggle [post]
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	var req struct {
		Type   string `json:"type"`
		ItemID uint   `json:"item_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.favoriteService.ToggleFavorite(c.Context(), service.ToggleFavoriteInput{
		UserID: currentUserID(c),
		Type:   models.FavoriteType(req.Type),
		ItemID: req.ItemID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
