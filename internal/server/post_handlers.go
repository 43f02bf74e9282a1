package server

import (
	"cheznous/internal/models"
	"cheznous/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetForumPosts handles GET /api/forums/:id/posts
// @Summary List posts in a forum
// @Description Supports sort=latest|top|active. Private forums 404 for non-members.
// @Tags posts
// @Produce json
// @Param id path int true "Forum ID"
// @Param sort query string false "Sort order"
// @Success 200 {array} models.Post
// @Failure 404 {object} object{error=string}
// @Router /forums/{id}/posts [get]
func (s *Server) GetForumPosts(c *fiber.Ctx) error {
	forumID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	limit, offset := parsePagination(c)
	posts, err := s.postService.ListForumPosts(
		c.Context(), forumID, limit, offset, optionalUserID(c), c.Query("sort"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// CreatePost handles POST /api/forums/:id/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Forum ID"
// @Param request body object{title=string,content=string,is_anonymous=bool} true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /forums/{id}/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	forumID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		IsAnonymous bool   `json:"is_anonymous"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:      currentUserID(c),
		ForumID:     forumID,
		Title:       req.Title,
		Content:     req.Content,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} object{error=string}
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.GetPost(c.Context(), postID, optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update a post
// @Description Only the author may edit.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body object{title=string,content=string} true "Fields to update"
// @Success 200 {object} models.Post
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:  currentUserID(c),
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}
