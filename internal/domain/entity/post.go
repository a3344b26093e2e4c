package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a photo post published to the shared feed.
type Post struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the post.
	AuthorID  uuid.UUID // The ID of the user who published this post.
	PostPhoto string    // URL of the posted photo. Required.
	PostText  string    // Optional caption.
	Author    *User     // The publishing user, populated on reads that join author data.
	CreatedAt time.Time // Timestamp of when this post was created.
}

// PostComment is a comment left under a post.
type PostComment struct {
	ID        uuid.UUID // The unique ID for this comment.
	PostID    uuid.UUID // The post this comment belongs to.
	AuthorID  uuid.UUID // The ID of the commenting user.
	Text      string    // The comment body. Required.
	Author    *User     // The commenting user, populated on reads that join author data.
	CreatedAt time.Time // Timestamp of when this comment was created.
}
