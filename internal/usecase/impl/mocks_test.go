package impl

import (
	"context"

	"petstar/internal/domain/entity"
	"petstar/internal/domain/repository"
	"petstar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository and service interfaces.

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockResetTokenRepository struct{ mock.Mock }

func (m *MockResetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	record, _ := args.Get(0).(*entity.PasswordResetToken)

	return record, args.Error(1)
}

func (m *MockResetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPostRepository struct{ mock.Mock }

func (m *MockPostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostRepository) ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	args := m.Called(ctx, authorID)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *MockPostRepository) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *MockPostRepository) CreateComment(ctx context.Context, comment *entity.PostComment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockPostRepository) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*entity.PostComment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]*entity.PostComment)

	return comments, args.Error(1)
}

type MockForumRepository struct{ mock.Mock }

func (m *MockForumRepository) CreateTopic(ctx context.Context, topic *entity.ForumTopic) error {
	return m.Called(ctx, topic).Error(0)
}

func (m *MockForumRepository) FindTopicByID(ctx context.Context, id uuid.UUID) (*entity.ForumTopic, error) {
	args := m.Called(ctx, id)
	topic, _ := args.Get(0).(*entity.ForumTopic)

	return topic, args.Error(1)
}

func (m *MockForumRepository) ListTopicsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.ForumTopic, error) {
	args := m.Called(ctx, authorID)
	topics, _ := args.Get(0).([]*entity.ForumTopic)

	return topics, args.Error(1)
}

func (m *MockForumRepository) ListTopics(ctx context.Context) ([]*entity.ForumTopic, error) {
	args := m.Called(ctx)
	topics, _ := args.Get(0).([]*entity.ForumTopic)

	return topics, args.Error(1)
}

func (m *MockForumRepository) CreateResponse(ctx context.Context, response *entity.TopicResponse) error {
	return m.Called(ctx, response).Error(0)
}

func (m *MockForumRepository) ListResponsesByTopic(ctx context.Context, topicID uuid.UUID) ([]*entity.TopicResponse, error) {
	args := m.Called(ctx, topicID)
	responses, _ := args.Get(0).([]*entity.TopicResponse)

	return responses, args.Error(1)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) IssueToken(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.SessionClaims)

	return claims, args.Error(1)
}

type MockResetTokenIssuer struct{ mock.Mock }

func (m *MockResetTokenIssuer) Issue(email string) *entity.PasswordResetToken {
	args := m.Called(email)
	token, _ := args.Get(0).(*entity.PasswordResetToken)

	return token
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	return m.Called(ctx, to, subject, htmlBody).Error(0)
}

// fakeRepoFactory hands the test's mocks to transactional code paths.
type fakeRepoFactory struct {
	users  repository.UserRepository
	tokens repository.ResetTokenRepository
	posts  repository.PostRepository
	forum  repository.ForumRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository             { return f.users }
func (f *fakeRepoFactory) ResetTokenRepo() repository.ResetTokenRepository { return f.tokens }
func (f *fakeRepoFactory) PostRepo() repository.PostRepository             { return f.posts }
func (f *fakeRepoFactory) ForumRepo() repository.ForumRepository           { return f.forum }

// fakeTxManager runs the callback against the fake factory without a database.
type fakeTxManager struct {
	factory *fakeRepoFactory
	err     error
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if f.err != nil {
		return f.err
	}

	return fn(f.factory)
}
