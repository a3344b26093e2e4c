package usecase

import (
	"context"

	"petstar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePostInput defines the data required to publish a feed post.
type CreatePostInput struct {
	PostPhoto string
	PostText  string
}

// CreateTopicInput defines the data required to open a forum topic.
type CreateTopicInput struct {
	Title string
	Text  string
}

// --- Output DTOs ---

// OwnPostsOutput bundles the author with their posts.
type OwnPostsOutput struct {
	Author *entity.User
	Posts  []*entity.Post
}

// PostCommentsOutput bundles a post with its comment thread.
type PostCommentsOutput struct {
	Post     *entity.Post
	Comments []*entity.PostComment
}

// OwnTopicsOutput bundles the author with their forum topics.
type OwnTopicsOutput struct {
	Author *entity.User
	Topics []*entity.ForumTopic
}

// TopicResponsesOutput bundles a topic with its response thread.
type TopicResponsesOutput struct {
	Topic     *entity.ForumTopic
	Responses []*entity.TopicResponse
}

// ContentUsecase defines the interface for the feed and forum operations.
// All operations act on behalf of the authenticated user identified by email.
type ContentUsecase interface {
	// Posts
	CreatePost(ctx context.Context, email string, input CreatePostInput) (*entity.Post, error)
	ListOwnPosts(ctx context.Context, email string) (*OwnPostsOutput, error)
	ListAllPosts(ctx context.Context) ([]*entity.Post, error)
	AddComment(ctx context.Context, email string, postID uuid.UUID, text string) (*entity.PostComment, error)
	ListComments(ctx context.Context, postID uuid.UUID) (*PostCommentsOutput, error)

	// Forum
	CreateTopic(ctx context.Context, email string, input CreateTopicInput) (*entity.ForumTopic, error)
	ListOwnTopics(ctx context.Context, email string) (*OwnTopicsOutput, error)
	ListAllTopics(ctx context.Context) ([]*entity.ForumTopic, error)
	AddResponse(ctx context.Context, email string, topicID uuid.UUID, text string) (*entity.TopicResponse, error)
	ListResponses(ctx context.Context, topicID uuid.UUID) (*TopicResponsesOutput, error)
}
