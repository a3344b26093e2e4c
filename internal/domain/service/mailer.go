package service

import "context"

// Mailer is the outbound email capability. Delivery failures are the
// caller's concern: the auth flows log them and carry on, they never fail
// the request that triggered the send.
type Mailer interface {
	// Send delivers one HTML email to a single recipient.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
