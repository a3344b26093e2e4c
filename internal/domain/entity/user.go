// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered pet account.
// Email doubles as the login identifier and is unique across the system.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's email, used as the login identifier. Unique, case-sensitive as stored.
	PasswordHash string    // The bcrypt hash of the user's password. Never exposed outside the domain.
	PetStar      string    // The pet's display name shown across the network.
	UserPhoto    string    // Optional URL of the pet's profile photo.
	Breed        string    // Optional breed description.
	BirthDate    string    // Optional birth date, stored as the client supplied it.
	Hobbies      string    // Optional free-text hobbies.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
