package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arifmahmud/pixpost/internal/models"
	"github.com/arifmahmud/pixpost/internal/repositories"
)

// ErrEmptyComment is returned when a comment has no text
var ErrEmptyComment = errors.New("comment text is required")

// EngagementService enforces the like/comment rules on top of the post
// store: at most one like per client identifier, comments append-only.
type EngagementService struct {
	postRepository repositories.PostRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(postRepo repositories.PostRepository) *EngagementService {
	return &EngagementService{postRepository: postRepo}
}

// Like records a like on a post by clientID. A repeat like by the same
// client is reported as repositories.ErrAlreadyLiked, never silently
// ignored. The store performs the check and the increment as one atomic
// update, so concurrent likes by the same client cannot double-count.
func (s *EngagementService) Like(ctx context.Context, postID, clientID string) (*models.Post, error) {
	return s.postRepository.AddLike(ctx, postID, clientID)
}

// Comment appends a comment to a post. When author is empty the client
// identifier is used instead, matching the behavior of anonymous callers.
func (s *EngagementService) Comment(ctx context.Context, postID, text, author, clientID string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	if author == "" {
		author = clientID
	}
	comment := models.Comment{
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}
	return s.postRepository.AppendComment(ctx, postID, comment)
}
