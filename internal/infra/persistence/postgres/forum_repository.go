package postgres

import (
	"context"

	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/domain/repository"
	"petstar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// forumRepository implements the domain.ForumRepository interface using GORM.
type forumRepository struct {
	db *gorm.DB
}

// NewForumRepository is the constructor for forumRepository.
func NewForumRepository(db *gorm.DB) repository.ForumRepository {
	return &forumRepository{db: db}
}

// CreateTopic persists a new forum topic.
func (repo *forumRepository) CreateTopic(ctx context.Context, topic *entity.ForumTopic) error {
	topicM := fromForumTopicDomain(topic)

	if err := repo.db.WithContext(ctx).Create(topicM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create forum topic")
	}

	topic.ID = topicM.ID
	topic.CreatedAt = topicM.CreatedAt

	return nil
}

// FindTopicByID retrieves a single topic with its author joined.
func (repo *forumRepository) FindTopicByID(ctx context.Context, id uuid.UUID) (*entity.ForumTopic, error) {
	var topicM model.ForumTopicModel
	if err := repo.db.WithContext(ctx).Preload("Author").First(&topicM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find forum topic by id")
	}

	return toForumTopicDomain(&topicM), nil
}

// ListTopicsByAuthor retrieves all topics opened by one user, newest first.
func (repo *forumRepository) ListTopicsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.ForumTopic, error) {
	var topicMs []model.ForumTopicModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&topicMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list forum topics by author")
	}

	return toForumTopicDomainList(topicMs), nil
}

// ListTopics retrieves every topic on the board with authors joined, newest first.
func (repo *forumRepository) ListTopics(ctx context.Context) ([]*entity.ForumTopic, error) {
	var topicMs []model.ForumTopicModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&topicMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list forum topics")
	}

	return toForumTopicDomainList(topicMs), nil
}

// CreateResponse persists a new response under an existing topic.
func (repo *forumRepository) CreateResponse(ctx context.Context, response *entity.TopicResponse) error {
	responseM := fromTopicResponseDomain(response)

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTopicNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create topic response")
	}

	response.ID = responseM.ID
	response.CreatedAt = responseM.CreatedAt

	return nil
}

// ListResponsesByTopic retrieves all responses under one topic, oldest first.
func (repo *forumRepository) ListResponsesByTopic(ctx context.Context, topicID uuid.UUID) ([]*entity.TopicResponse, error) {
	var responseMs []model.TopicResponseModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&responseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list topic responses")
	}

	responses := make([]*entity.TopicResponse, 0, len(responseMs))
	for i := range responseMs {
		responses = append(responses, toTopicResponseDomain(&responseMs[i]))
	}

	return responses, nil
}

func toForumTopicDomain(topicM *model.ForumTopicModel) *entity.ForumTopic {
	topic := &entity.ForumTopic{
		ID:        topicM.ID,
		AuthorID:  topicM.AuthorID,
		Title:     topicM.Title,
		Text:      topicM.Text,
		CreatedAt: topicM.CreatedAt,
	}
	if topicM.Author != nil {
		topic.Author = toUserDomain(topicM.Author)
	}

	return topic
}

func toForumTopicDomainList(topicMs []model.ForumTopicModel) []*entity.ForumTopic {
	topics := make([]*entity.ForumTopic, 0, len(topicMs))
	for i := range topicMs {
		topics = append(topics, toForumTopicDomain(&topicMs[i]))
	}

	return topics
}

func fromForumTopicDomain(topic *entity.ForumTopic) *model.ForumTopicModel {
	return &model.ForumTopicModel{
		ID:        topic.ID,
		AuthorID:  topic.AuthorID,
		Title:     topic.Title,
		Text:      topic.Text,
		CreatedAt: topic.CreatedAt,
	}
}

func toTopicResponseDomain(responseM *model.TopicResponseModel) *entity.TopicResponse {
	response := &entity.TopicResponse{
		ID:        responseM.ID,
		TopicID:   responseM.TopicID,
		AuthorID:  responseM.AuthorID,
		Text:      responseM.Text,
		CreatedAt: responseM.CreatedAt,
	}
	if responseM.Author != nil {
		response.Author = toUserDomain(responseM.Author)
	}

	return response
}

func fromTopicResponseDomain(response *entity.TopicResponse) *model.TopicResponseModel {
	return &model.TopicResponseModel{
		ID:        response.ID,
		TopicID:   response.TopicID,
		AuthorID:  response.AuthorID,
		Text:      response.Text,
		CreatedAt: response.CreatedAt,
	}
}
