package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken represents one outstanding password-recovery grant.
// The token value is an opaque UUID string mailed to the account owner; the
// record is consumed (deleted) on successful redemption. Several tokens may
// exist for the same email at once, each valid until its own expiry.
type PasswordResetToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	Email     string    // The email of the account this token can reset. Weak reference, resolved at redemption.
	Token     string    // The opaque token value included in the reset link.
	ExpiresAt time.Time // The instant after which the token is no longer redeemable.
	CreatedAt time.Time // Timestamp of when this token was issued.
}

// Expired reports whether the token is past its expiry at the given instant.
// A token presented exactly at ExpiresAt is still valid.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
