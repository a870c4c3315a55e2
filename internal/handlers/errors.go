package handlers

import (
	"errors"
	"net/http"

	"github.com/arifmahmud/pixpost/internal/repositories"
	"github.com/arifmahmud/pixpost/internal/services"
	"github.com/labstack/echo/v4"
)

// httpError maps domain errors to HTTP errors. Anything unrecognized is a
// 500 with a generic message; internal details are never exposed.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, repositories.ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID format")
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, repositories.ErrAlreadyLiked):
		return echo.NewHTTPError(http.StatusBadRequest, "You already liked this post")
	case errors.Is(err, services.ErrEmptyComment):
		return echo.NewHTTPError(http.StatusBadRequest, "Comment text is required")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
}
