package impl

import (
	"context"
	"log/slog"

	deliverycontext "petstar/internal/delivery/context"
	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/domain/repository"
	"petstar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface for feed and forum content.
type contentService struct {
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
	forumRepo repository.ForumRepository
	logger    *slog.Logger
}

// replyConfig parameterizes the shared create-under-parent flow used by both
// post comments and topic responses.
type replyConfig struct {
	FindParent func(ctx context.Context) error
	Create     func(ctx context.Context, author *entity.User) error
	ParentErr  error
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	PostRepo  repository.PostRepository
	ForumRepo repository.ForumRepository
	Logger    *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		userRepo:  params.UserRepo,
		postRepo:  params.PostRepo,
		forumRepo: params.ForumRepo,
		logger:    params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveAuthor maps the authenticated email to its user entity.
func (srv *contentService) resolveAuthor(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve author")
	}

	return user, nil
}

// executeReply runs the shared flow for creating content under a parent:
// resolve the author, verify the parent exists, then persist the reply.
func (srv *contentService) executeReply(ctx context.Context, email string, cfg *replyConfig) (*entity.User, error) {
	author, err := srv.resolveAuthor(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := cfg.FindParent(ctx); err != nil {
		return nil, cfg.mapParentErr(err)
	}

	if err := cfg.Create(ctx, author); err != nil {
		return nil, cfg.mapParentErr(err)
	}

	return author, nil
}

func (cfg *replyConfig) mapParentErr(err error) error {
	if errors.Is(err, repository.ErrPostNotFound) || errors.Is(err, repository.ErrTopicNotFound) {
		return cfg.ParentErr
	}

	return err
}

// --- Posts ---

// CreatePost publishes a new feed post on behalf of the authenticated user.
func (srv *contentService) CreatePost(ctx context.Context, email string, input usecase.CreatePostInput) (*entity.Post, error) {
	author, err := srv.resolveAuthor(ctx, email)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		AuthorID:  author.ID,
		PostPhoto: input.PostPhoto,
		PostText:  input.PostText,
	}
	if err := srv.postRepo.CreatePost(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}
	post.Author = author

	srv.log(ctx).Debug("Post created", slog.Any("postID", post.ID))

	return post, nil
}

// ListOwnPosts returns the authenticated user's posts with the author attached.
func (srv *contentService) ListOwnPosts(ctx context.Context, email string) (*usecase.OwnPostsOutput, error) {
	author, err := srv.resolveAuthor(ctx, email)
	if err != nil {
		return nil, err
	}

	posts, err := srv.postRepo.ListPostsByAuthor(ctx, author.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own posts")
	}

	return &usecase.OwnPostsOutput{Author: author, Posts: posts}, nil
}

// ListAllPosts returns the whole feed.
func (srv *contentService) ListAllPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// AddComment creates a comment under an existing post.
func (srv *contentService) AddComment(ctx context.Context, email string, postID uuid.UUID, text string) (*entity.PostComment, error) {
	comment := &entity.PostComment{PostID: postID, Text: text}

	author, err := srv.executeReply(ctx, email, &replyConfig{
		FindParent: func(ctx context.Context) error {
			_, err := srv.postRepo.FindPostByID(ctx, postID)

			return err
		},
		Create: func(ctx context.Context, author *entity.User) error {
			comment.AuthorID = author.ID

			return srv.postRepo.CreateComment(ctx, comment)
		},
		ParentErr: domainerrors.ErrPostNotFound,
	})
	if err != nil {
		return nil, err
	}
	comment.Author = author

	return comment, nil
}

// ListComments returns a post together with its comment thread.
func (srv *contentService) ListComments(ctx context.Context, postID uuid.UUID) (*usecase.PostCommentsOutput, error) {
	post, err := srv.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	comments, err := srv.postRepo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return &usecase.PostCommentsOutput{Post: post, Comments: comments}, nil
}

// --- Forum ---

// CreateTopic opens a new forum topic on behalf of the authenticated user.
func (srv *contentService) CreateTopic(ctx context.Context, email string, input usecase.CreateTopicInput) (*entity.ForumTopic, error) {
	author, err := srv.resolveAuthor(ctx, email)
	if err != nil {
		return nil, err
	}

	topic := &entity.ForumTopic{
		AuthorID: author.ID,
		Title:    input.Title,
		Text:     input.Text,
	}
	if err := srv.forumRepo.CreateTopic(ctx, topic); err != nil {
		return nil, errors.Wrap(err, "failed to create forum topic")
	}
	topic.Author = author

	srv.log(ctx).Debug("Forum topic created", slog.Any("topicID", topic.ID))

	return topic, nil
}

// ListOwnTopics returns the authenticated user's topics with the author attached.
func (srv *contentService) ListOwnTopics(ctx context.Context, email string) (*usecase.OwnTopicsOutput, error) {
	author, err := srv.resolveAuthor(ctx, email)
	if err != nil {
		return nil, err
	}

	topics, err := srv.forumRepo.ListTopicsByAuthor(ctx, author.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own topics")
	}

	return &usecase.OwnTopicsOutput{Author: author, Topics: topics}, nil
}

// ListAllTopics returns the whole forum board.
func (srv *contentService) ListAllTopics(ctx context.Context) ([]*entity.ForumTopic, error) {
	topics, err := srv.forumRepo.ListTopics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list forum topics")
	}

	return topics, nil
}

// AddResponse creates a response under an existing forum topic.
func (srv *contentService) AddResponse(ctx context.Context, email string, topicID uuid.UUID, text string) (*entity.TopicResponse, error) {
	response := &entity.TopicResponse{TopicID: topicID, Text: text}

	author, err := srv.executeReply(ctx, email, &replyConfig{
		FindParent: func(ctx context.Context) error {
			_, err := srv.forumRepo.FindTopicByID(ctx, topicID)

			return err
		},
		Create: func(ctx context.Context, author *entity.User) error {
			response.AuthorID = author.ID

			return srv.forumRepo.CreateResponse(ctx, response)
		},
		ParentErr: domainerrors.ErrTopicNotFound,
	})
	if err != nil {
		return nil, err
	}
	response.Author = author

	return response, nil
}

// ListResponses returns a topic together with its response thread.
func (srv *contentService) ListResponses(ctx context.Context, topicID uuid.UUID) (*usecase.TopicResponsesOutput, error) {
	topic, err := srv.forumRepo.FindTopicByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, repository.ErrTopicNotFound) {
			return nil, domainerrors.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find forum topic")
	}

	responses, err := srv.forumRepo.ListResponsesByTopic(ctx, topicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list topic responses")
	}

	return &usecase.TopicResponsesOutput{Topic: topic, Responses: responses}, nil
}
