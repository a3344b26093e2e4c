package repository

import (
	"context"
	"errors"

	"petstar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTopicNotFound is returned when a forum topic id does not resolve.
var ErrTopicNotFound = errors.New("forum topic not found")

// ForumRepository defines the operations for forum topics and their responses.
// List operations populate the Author field of returned records.
type ForumRepository interface {
	// CreateTopic persists a new forum topic.
	CreateTopic(ctx context.Context, topic *entity.ForumTopic) error

	// FindTopicByID retrieves a single topic with its author joined.
	FindTopicByID(ctx context.Context, id uuid.UUID) (*entity.ForumTopic, error)

	// ListTopicsByAuthor retrieves all topics opened by one user.
	ListTopicsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.ForumTopic, error)

	// ListTopics retrieves every topic on the board with authors joined.
	ListTopics(ctx context.Context) ([]*entity.ForumTopic, error)

	// CreateResponse persists a new response under an existing topic.
	CreateResponse(ctx context.Context, response *entity.TopicResponse) error

	// ListResponsesByTopic retrieves all responses under one topic with authors joined.
	ListResponsesByTopic(ctx context.Context, topicID uuid.UUID) ([]*entity.TopicResponse, error)
}
