package server

import (
	"cheznous/internal/models"
	"cheznous/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ToggleReaction handles POST /api/reactions/toggle
// @Summary Toggle a like or dislike
// @Description Adds the reaction when absent, removes it when the same kind is sent again, and switches in place when the opposite kind is sent.
// @Tags reactions
// @Accept json
// @Produce json
// @Param request body object{kind=string,content_type=string,content_id=int} true "Reaction"
// @Success 200 {object} service.ToggleReactionResult
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /reactions/toggle [post]
func (s *Server) ToggleReaction(c *fiber.Ctx) error {
	var req struct {
		Kind        string `json:"kind"`
		ContentType string `json:"content_type"`
		ContentID   uint   `json:"content_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.reactionService.ToggleReaction(c.Context(), service.ToggleReactionInput{
		UserID:      currentUserID(c),
		Kind:        models.ReactionKind(req.Kind),
		ContentType: models.ReactionTarget(req.ContentType),
		ContentID:   req.ContentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
