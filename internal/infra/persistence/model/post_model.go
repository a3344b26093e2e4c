package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PostPhoto string    `gorm:"type:text"`
	PostText  string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Author   *UserModel         `gorm:"foreignKey:AuthorID"`
	Comments []PostCommentModel `gorm:"foreignKey:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostCommentModel mirrors the 'post_comments' table.
type PostCommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (PostCommentModel) TableName() string {
	return "post_comments"
}
