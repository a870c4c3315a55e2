package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a shared post stored in MongoDB, including its
// engagement state (likes and comments) embedded in the same document.
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Message   string             `json:"message" bson:"message"`
	ImageURL  string             `json:"imageUrl" bson:"image_url"`
	LikeCount int                `json:"likeCount" bson:"like_count"`
	LikedBy   []string           `json:"likedBy" bson:"liked_by"` // client identifiers that already liked this post
	Comments  []Comment          `json:"comments" bson:"comments"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Comment is a single comment embedded in a post document. Comments are
// append-only; they are only removed when the whole post is deleted.
type Comment struct {
	Text      string    `json:"text" bson:"text"`
	Author    string    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// UpdatePostRequest defines the request body for updating a post's message
type UpdatePostRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// CreateCommentRequest defines the request body for commenting on a post.
// Author is optional; the server falls back to the client identifier.
type CreateCommentRequest struct {
	Text   string `json:"text" validate:"required,min=1"`
	Author string `json:"author,omitempty" validate:"omitempty,max=100"`
}
