package model

import (
	"time"

	"github.com/google/uuid"
)

// ForumTopicModel mirrors the 'forum_topics' table.
type ForumTopicModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Author    *UserModel           `gorm:"foreignKey:AuthorID"`
	Responses []TopicResponseModel `gorm:"foreignKey:TopicID"`
}

// TableName explicitly sets the table name for GORM.
func (ForumTopicModel) TableName() string {
	return "forum_topics"
}

// TopicResponseModel mirrors the 'topic_responses' table.
type TopicResponseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (TopicResponseModel) TableName() string {
	return "topic_responses"
}
