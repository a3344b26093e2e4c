package service

import (
	"petstar/internal/domain/entity"
)

// ResetTokenIssuer mints password-reset tokens. Persistence and redemption
// are handled by the use case through the ResetTokenRepository; the issuer
// only decides the token value and its expiry.
type ResetTokenIssuer interface {
	// Issue returns a fresh, globally unique reset token for the given email,
	// with ExpiresAt set to the issuance time plus the configured TTL.
	Issue(email string) *entity.PasswordResetToken
}
