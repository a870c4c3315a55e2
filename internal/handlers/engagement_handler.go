package handlers

import (
	"net/http"

	"github.com/arifmahmud/pixpost/internal/models"
	"github.com/arifmahmud/pixpost/internal/services"
	"github.com/labstack/echo/v4"
)

// EngagementHandler handles HTTP requests related to likes and comments.
// The client identity used for like dedup and as the comment author
// fallback is the caller's network address; there is no auth model.
type EngagementHandler struct {
	engagementService *services.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// RegisterEngagementRoutes registers like and comment routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost)
	g.POST("/posts/:id/comment", h.CommentOnPost)
}

// LikePost handles liking a post, at most once per client address
func (h *EngagementHandler) LikePost(c echo.Context) error {
	post, err := h.engagementService.Like(c.Request().Context(), c.Param("id"), c.RealIP())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// CommentOnPost appends a comment to a post
func (h *EngagementHandler) CommentOnPost(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.engagementService.Comment(c.Request().Context(), c.Param("id"), req.Text, req.Author, c.RealIP())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}
