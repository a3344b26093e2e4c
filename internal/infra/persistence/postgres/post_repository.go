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

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// CreatePost persists a new post.
func (repo *postRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// FindPostByID retrieves a single post with its author joined.
func (repo *postRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).Preload("Author").First(&postM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// ListPostsByAuthor retrieves all posts published by one user, newest first.
func (repo *postRepository) ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return toPostDomainList(postMs), nil
}

// ListPosts retrieves every post on the feed with authors joined, newest first.
func (repo *postRepository) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomainList(postMs), nil
}

// CreateComment persists a new comment under an existing post.
func (repo *postRepository) CreateComment(ctx context.Context, comment *entity.PostComment) error {
	commentM := fromPostCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListCommentsByPost retrieves all comments under one post, oldest first.
func (repo *postRepository) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*entity.PostComment, error) {
	var commentMs []model.PostCommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&commentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list post comments")
	}

	comments := make([]*entity.PostComment, 0, len(commentMs))
	for i := range commentMs {
		comments = append(comments, toPostCommentDomain(&commentMs[i]))
	}

	return comments, nil
}

func toPostDomain(postM *model.PostModel) *entity.Post {
	post := &entity.Post{
		ID:        postM.ID,
		AuthorID:  postM.AuthorID,
		PostPhoto: postM.PostPhoto,
		PostText:  postM.PostText,
		CreatedAt: postM.CreatedAt,
	}
	if postM.Author != nil {
		post.Author = toUserDomain(postM.Author)
	}

	return post
}

func toPostDomainList(postMs []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toPostDomain(&postMs[i]))
	}

	return posts
}

func fromPostDomain(post *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		PostPhoto: post.PostPhoto,
		PostText:  post.PostText,
		CreatedAt: post.CreatedAt,
	}
}

func toPostCommentDomain(commentM *model.PostCommentModel) *entity.PostComment {
	comment := &entity.PostComment{
		ID:        commentM.ID,
		PostID:    commentM.PostID,
		AuthorID:  commentM.AuthorID,
		Text:      commentM.Text,
		CreatedAt: commentM.CreatedAt,
	}
	if commentM.Author != nil {
		comment.Author = toUserDomain(commentM.Author)
	}

	return comment
}

func fromPostCommentDomain(comment *entity.PostComment) *model.PostCommentModel {
	return &model.PostCommentModel{
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
