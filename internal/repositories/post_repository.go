package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/arifmahmud/pixpost/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sentinel errors returned by PostRepository implementations. Handlers map
// these to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("post not found")
	ErrInvalidID    = errors.New("invalid post ID format")
	ErrAlreadyLiked = errors.New("post already liked by this client")
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	UpdateMessage(ctx context.Context, id, message string) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error

	// AddLike records a like by clientID as a single atomic update. It
	// returns ErrAlreadyLiked if clientID has already liked the post; under
	// concurrent calls for the same (post, client) pair at most one succeeds.
	AddLike(ctx context.Context, id, clientID string) (*models.Post, error)

	// AppendComment appends a comment as a single atomic update. Concurrent
	// appends on the same post are all preserved.
	AppendComment(ctx context.Context, id string, comment models.Comment) (*models.Post, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objID, nil
}

// CreatePost creates a new post in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.LikeCount = 0
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves all posts from MongoDB in store order
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateMessage replaces a post's message and returns the updated post
func (r *MongoPostRepository) UpdateMessage(ctx context.Context, id, message string) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"message":    message,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post by ID from MongoDB
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLike adds clientID to the post's liked_by set and increments the like
// count in one atomic update. The filter excludes documents that already
// contain clientID, so a duplicate like never matches and the count can
// never be incremented twice for the same client.
func (r *MongoPostRepository) AddLike(ctx context.Context, id, clientID string) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"_id":      objID,
		"liked_by": bson.M{"$ne": clientID},
	}
	update := bson.M{
		"$addToSet": bson.M{"liked_by": clientID},
		"$inc":      bson.M{"like_count": 1},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No match: either the post is missing or the client already
			// liked it. Look the post up to tell the two apart.
			if _, getErr := r.GetPostByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}
	return &post, nil
}

// AppendComment pushes a comment onto the post's comments array in one
// atomic update, preserving insertion order under concurrent appends.
func (r *MongoPostRepository) AppendComment(ctx context.Context, id string, comment models.Comment) (*models.Post, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}
