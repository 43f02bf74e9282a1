package server

import (
	"cheznous/internal/models"
	"cheznous/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPublicForums handles GET /api/forums
// @Summary List public forums
// @Tags forums
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Forum
// @Router /forums [get]
func (s *Server) GetPublicForums(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	forums, err := s.forumService.ListPublicForums(c.Context(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"forums": forums})
}

// GetMyForums handles GET /api/forums/mine
// @Summary List forums the caller belongs to
// @Tags forums
// @Produce json
// @Success 200 {array} models.Forum
// @Failure 401 {object} object{error=string}
// @Router /forums/mine [get]
func (s *Server) GetMyForums(c *fiber.Ctx) error {
	forums, err := s.forumService.ListMyForums(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"forums": forums})
}

// CreateForum handles POST /api/forums
// @Summary Create a forum
// @Description Create a public forum in a category or a private forum with an access code. The creator is enrolled as forum admin.
// @Tags forums
// @Accept json
// @Produce json
// @Param request body object{title=string,description=string,category_id=int,is_private=bool,access_code=string,is_premium=bool} true "Forum"
// @Success 201 {object} models.Forum
// @Failure 400 {object} object{error=string}
// @Router /forums [post]
func (s *Server) CreateForum(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CategoryID  *uint  `json:"category_id"`
		IsPrivate   bool   `json:"is_private"`
		AccessCode  string `json:"access_code"`
		IsPremium   bool   `json:"is_premium"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	forum, err := s.forumService.CreateForum(c.Context(), service.CreateForumInput{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		IsPrivate:   req.IsPrivate,
		AccessCode:  req.AccessCode,
		IsPremium:   req.IsPremium,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	resp := fiber.Map{"forum": forum}
	// The access code is stripped from forum JSON, so echo it once on
	// creation so the creator can share it.
	if forum.IsPrivate && forum.AccessCode != nil {
		resp["access_code"] = *forum.AccessCode
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetForum handles GET /api/forums/:id
// @Summary Get a forum
// @Description Private forums are only visible to members; everyone else gets 404.
// @Tags forums
// @Produce json
// @Param id path int true "Forum ID"
// @Success 200 {object} models.Forum
// @Failure 404 {object} object{error=string}
// @Router /forums/{id} [get]
func (s *Server) GetForum(c *fiber.Ctx) error {
	forumID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	forum, err := s.forumService.GetForum(c.Context(), forumID, optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"forum": forum})
}

// UpdateForum handles PUT /api/forums/:id
// @Summary Update a forum
// @Description Only the forum creator may update it. Privacy cannot change after creation.
// @Tags forums
// @Accept json
// @Produce json
// @Param id path int true "Forum ID"
// @Param request body object{title=string,description=string,access_code=string} true "Fields to update"
// @Success 200 {object} models.Forum
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /forums/{id} [put]
func (s *Server) UpdateForum(c *fiber.Ctx) error {
	forumID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		AccessCode  *string `json:"access_code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	forum, err := s.forumService.UpdateForum(c.Context(), service.UpdateForumInput{
		UserID:      currentUserID(c),
		ForumID:     forumID,
		Title:       req.Title,
		Description: req.Description,
		AccessCode:  req.AccessCode,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"forum": forum})
}

// JoinForum handles POST /api/forums/:id/join
// @Summary Join a forum
// @Description Private forums require the access code. Joining twice is a no-op.
// @Tags forums
// @Accept json
// @Produce json
// @Param id path int true "Forum ID"
// @Param request body object{access_code=string} false "Access code for private forums"
// @Success 200 {object} object{joined=bool}
// @Failure 401 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /forums/{id}/join [post]
func (s *Server) JoinForum(c *fiber.Ctx) error {
	forumID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req struct {
		AccessCode string `json:"access_code"`
	}
	// A missing body is fine for public forums.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	if err := s.forumService.JoinForum(c.Context(), service.JoinForumInput{
		UserID:     currentUserID(c),
		ForumID:    forumID,
		AccessCode: req.AccessCode,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"joined": true})
}
