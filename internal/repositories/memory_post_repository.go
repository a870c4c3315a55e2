package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/arifmahmud/pixpost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryPostRepository is an in-process PostRepository used by tests and
// local development. It honors the same contract as the Mongo
// implementation, including the sentinel errors and the atomicity of
// AddLike/AppendComment (a single mutex serializes all mutations).
type MemoryPostRepository struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*models.Post
	order []primitive.ObjectID
}

// NewMemoryPostRepository creates an empty MemoryPostRepository
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts: make(map[primitive.ObjectID]*models.Post),
	}
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.LikedBy = append([]string{}, p.LikedBy...)
	cp.Comments = append([]models.Comment{}, p.Comments...)
	return &cp
}

// CreatePost stores a new post and assigns it a fresh ObjectID
func (r *MemoryPostRepository) CreatePost(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = primitive.NewObjectID()
	post.LikeCount = 0
	post.LikedBy = []string{}
	post.Comments = []models.Comment{}
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	r.posts[post.ID] = clonePost(post)
	r.order = append(r.order, post.ID)
	return nil
}

// GetPostByID retrieves a post by its hex ID
func (r *MemoryPostRepository) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePost(post), nil
}

// GetAllPosts returns all posts in insertion order
func (r *MemoryPostRepository) GetAllPosts(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := make([]models.Post, 0, len(r.order))
	for _, id := range r.order {
		posts = append(posts, *clonePost(r.posts[id]))
	}
	return posts, nil
}

// UpdateMessage replaces a post's message
func (r *MemoryPostRepository) UpdateMessage(_ context.Context, id, message string) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil, ErrNotFound
	}
	post.Message = message
	post.UpdatedAt = time.Now()
	return clonePost(post), nil
}

// DeletePost removes a post and its comments
func (r *MemoryPostRepository) DeletePost(_ context.Context, id string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[objID]; !ok {
		return ErrNotFound
	}
	delete(r.posts, objID)
	for i, oid := range r.order {
		if oid == objID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddLike records a like by clientID, at most once per client
func (r *MemoryPostRepository) AddLike(_ context.Context, id, clientID string) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil, ErrNotFound
	}
	for _, liker := range post.LikedBy {
		if liker == clientID {
			return nil, ErrAlreadyLiked
		}
	}
	post.LikedBy = append(post.LikedBy, clientID)
	post.LikeCount++
	post.UpdatedAt = time.Now()
	return clonePost(post), nil
}

// AppendComment appends a comment to the post
func (r *MemoryPostRepository) AppendComment(_ context.Context, id string, comment models.Comment) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil, ErrNotFound
	}
	post.Comments = append(post.Comments, comment)
	post.UpdatedAt = time.Now()
	return clonePost(post), nil
}
