package impl

import (
	"context"
	"testing"

	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/domain/repository"
	"petstar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contentServiceFixtures holds all test dependencies for content service tests.
type contentServiceFixtures struct {
	service   usecase.ContentUsecase
	userRepo  *MockUserRepository
	postRepo  *MockPostRepository
	forumRepo *MockForumRepository
}

func createTestContentService() contentServiceFixtures {
	userRepo := &MockUserRepository{}
	postRepo := &MockPostRepository{}
	forumRepo := &MockForumRepository{}

	service := NewContentService(ContentServiceParams{
		UserRepo:  userRepo,
		PostRepo:  postRepo,
		ForumRepo: forumRepo,
		Logger:    newDiscardLogger(),
	})

	return contentServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		postRepo:  postRepo,
		forumRepo: forumRepo,
	}
}

func testAuthor() *entity.User {
	return &entity.User{ID: uuid.New(), Email: "firulais@petstar.com", PetStar: "Firulais"}
}

func TestContentService_CreatePost(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	author := testAuthor()

	f.userRepo.On("FindByEmail", ctx, author.Email).Return(author, nil)
	f.postRepo.On("CreatePost", ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(args mock.Arguments) {
			post := args.Get(1).(*entity.Post)
			post.ID = uuid.New()
		}).
		Return(nil)

	post, err := f.service.CreatePost(ctx, author.Email, usecase.CreatePostInput{
		PostPhoto: "https://cdn.petstar.com/firulais.jpg",
		PostText:  "Best nap spot ever",
	})
	require.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, author, post.Author)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestContentService_CreatePost_UnknownAuthor(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()

	f.userRepo.On("FindByEmail", ctx, "nobody@petstar.com").Return(nil, repository.ErrUserNotFound)

	post, err := f.service.CreatePost(ctx, "nobody@petstar.com", usecase.CreatePostInput{PostPhoto: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, post)
}

func TestContentService_ListOwnPosts(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	author := testAuthor()

	posts := []*entity.Post{{ID: uuid.New(), AuthorID: author.ID, PostText: "hello"}}
	f.userRepo.On("FindByEmail", ctx, author.Email).Return(author, nil)
	f.postRepo.On("ListPostsByAuthor", ctx, author.ID).Return(posts, nil)

	output, err := f.service.ListOwnPosts(ctx, author.Email)
	require.NoError(t, err)
	assert.Equal(t, author, output.Author)
	assert.Equal(t, posts, output.Posts)
}

func TestContentService_ListAllPosts(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()

	posts := []*entity.Post{{ID: uuid.New()}, {ID: uuid.New()}}
	f.postRepo.On("ListPosts", ctx).Return(posts, nil)

	got, err := f.service.ListAllPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestContentService_AddComment(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	author := testAuthor()
	postID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, author.Email).Return(author, nil)
	f.postRepo.On("FindPostByID", ctx, postID).Return(&entity.Post{ID: postID}, nil)
	f.postRepo.On("CreateComment", ctx, mock.AnythingOfType("*entity.PostComment")).
		Run(func(args mock.Arguments) {
			comment := args.Get(1).(*entity.PostComment)
			comment.ID = uuid.New()
		}).
		Return(nil)

	comment, err := f.service.AddComment(ctx, author.Email, postID, "so cute!")
	require.NoError(t, err)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, author.ID, comment.AuthorID)
	assert.Equal(t, "so cute!", comment.Text)
}

func TestContentService_AddComment_PostNotFound(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	author := testAuthor()
	postID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, author.Email).Return(author, nil)
	f.postRepo.On("FindPostByID", ctx, postID).Return(nil, repository.ErrPostNotFound)

	comment, err := f.service.AddComment(ctx, author.Email, postID, "so cute!")
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.Nil(t, comment)
	f.postRepo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestContentService_ListComments(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	postID := uuid.New()

	post := &entity.Post{ID: postID, PostText: "hello"}
	comments := []*entity.PostComment{{ID: uuid.New(), PostID: postID, Text: "hi"}}
	f.postRepo.On("FindPostByID", ctx, postID).Return(post, nil)
	f.postRepo.On("ListCommentsByPost", ctx, postID).Return(comments, nil)

	output, err := f.service.ListComments(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, post, output.Post)
	assert.Equal(t, comments, output.Comments)
}

func TestContentService_ListComments_PostNotFound(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	postID := uuid.New()

	f.postRepo.On("FindPostByID", ctx, postID).Return(nil, repository.ErrPostNotFound)

	output, err := f.service.ListComments(ctx, postID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.Nil(t, output)
}

func TestContentService_CreateTopic(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	author := testAuthor()

	f.userRepo.On("FindByEmail", ctx, author.Email).Return(author, nil)
	f.forumRepo.On("CreateTopic", ctx, mock.AnythingOfType("*entity.ForumTopic")).
		Run(func(args mock.Arguments) {
			topic := args.Get(1).(*entity.ForumTopic)
			topic.ID = uuid.New()
		}).
		Return(nil)

	topic, err := f.service.CreateTopic(ctx, author.Email, usecase.CreateTopicInput{
		Title: "Best dog parks?",
		Text:  "Looking for recommendations",
	})
	require.NoError(t, err)
	assert.Equal(t, author.ID, topic.AuthorID)
	assert.Equal(t, "Best dog parks?", topic.Title)
}

func TestContentService_ListOwnTopics(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	author := testAuthor()

	topics := []*entity.ForumTopic{{ID: uuid.New(), AuthorID: author.ID}}
	f.userRepo.On("FindByEmail", ctx, author.Email).Return(author, nil)
	f.forumRepo.On("ListTopicsByAuthor", ctx, author.ID).Return(topics, nil)

	output, err := f.service.ListOwnTopics(ctx, author.Email)
	require.NoError(t, err)
	assert.Equal(t, author, output.Author)
	assert.Equal(t, topics, output.Topics)
}

func TestContentService_AddResponse_TopicNotFound(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	author := testAuthor()
	topicID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, author.Email).Return(author, nil)
	f.forumRepo.On("FindTopicByID", ctx, topicID).Return(nil, repository.ErrTopicNotFound)

	response, err := f.service.AddResponse(ctx, author.Email, topicID, "try the riverside park")
	assert.ErrorIs(t, err, domainerrors.ErrTopicNotFound)
	assert.Nil(t, response)
}

func TestContentService_ListResponses(t *testing.T) {
	f := createTestContentService()
	ctx := context.Background()
	topicID := uuid.New()

	topic := &entity.ForumTopic{ID: topicID, Title: "Best dog parks?"}
	responses := []*entity.TopicResponse{{ID: uuid.New(), TopicID: topicID, Text: "riverside"}}
	f.forumRepo.On("FindTopicByID", ctx, topicID).Return(topic, nil)
	f.forumRepo.On("ListResponsesByTopic", ctx, topicID).Return(responses, nil)

	output, err := f.service.ListResponses(ctx, topicID)
	require.NoError(t, err)
	assert.Equal(t, topic, output.Topic)
	assert.Equal(t, responses, output.Responses)
}
