package entity

import (
	"time"

	"github.com/google/uuid"
)

// ForumTopic is a discussion thread opened on the forum board.
type ForumTopic struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the topic.
	AuthorID  uuid.UUID // The ID of the user who opened this topic.
	Title     string    // The topic title. Required.
	Text      string    // The opening text. Required.
	Author    *User     // The opening user, populated on reads that join author data.
	CreatedAt time.Time // Timestamp of when this topic was opened.
}

// TopicResponse is a reply posted under a forum topic.
type TopicResponse struct {
	ID        uuid.UUID // The unique ID for this response.
	TopicID   uuid.UUID // The topic this response belongs to.
	AuthorID  uuid.UUID // The ID of the responding user.
	Text      string    // The response body. Required.
	Author    *User     // The responding user, populated on reads that join author data.
	CreatedAt time.Time // Timestamp of when this response was posted.
}
