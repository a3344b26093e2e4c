package repository

import (
	"context"
	"errors"

	"petstar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post id does not resolve.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the operations for feed posts and their comments.
// List operations populate the Author field of returned records.
type PostRepository interface {
	// CreatePost persists a new post.
	CreatePost(ctx context.Context, post *entity.Post) error

	// FindPostByID retrieves a single post with its author joined.
	FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// ListPostsByAuthor retrieves all posts published by one user.
	ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// ListPosts retrieves every post on the feed with authors joined.
	ListPosts(ctx context.Context) ([]*entity.Post, error)

	// CreateComment persists a new comment under an existing post.
	CreateComment(ctx context.Context, comment *entity.PostComment) error

	// ListCommentsByPost retrieves all comments under one post with authors joined.
	ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*entity.PostComment, error)
}
