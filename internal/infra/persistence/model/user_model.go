// Package model declares the GORM table mappings for the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PetStar      string    `gorm:"type:varchar(100);not null"`
	UserPhoto    string    `gorm:"type:text"`
	Breed        string    `gorm:"type:varchar(100)"`
	BirthDate    string    `gorm:"type:varchar(50)"`
	Hobbies      string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts       []PostModel       `gorm:"foreignKey:AuthorID"`
	ForumTopics []ForumTopicModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
