package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/arifmahmud/pixpost/internal/models"
	"github.com/arifmahmud/pixpost/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ImageUploader hands image bytes to an external object store and returns a
// stable public URL. Upload is synchronous and may fail independently of
// the post store.
type ImageUploader interface {
	Upload(ctx context.Context, fileName string, r io.Reader, contentType string) (string, error)
}

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	uploader       ImageUploader
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, uploader ImageUploader) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		uploader:       uploader,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.PATCH("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post from a multipart form carrying a message
// and an image file. The image is uploaded first; no post record is
// written unless the upload succeeds.
func (h *PostHandler) CreatePost(c echo.Context) error {
	message := c.FormValue("message")
	file, err := c.FormFile("image")
	if message == "" || err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields or no image provided")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read uploaded image")
	}
	defer src.Close()

	imageURL, err := h.uploader.Upload(c.Request().Context(), file.Filename, src, file.Header.Get("Content-Type"))
	if err != nil {
		c.Logger().Errorf("image upload failed: %v", err)
		return echo.NewHTTPError(http.StatusBadGateway, "Image upload failed")
	}

	post := &models.Post{
		Message:  message,
		ImageURL: imageURL,
	}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPosts retrieves all posts
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost replaces a post's message
func (h *PostHandler) UpdatePost(c echo.Context) error {
	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.UpdateMessage(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost permanently removes a post and its comments
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postRepository.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
