package usecases

import "context"

// Mailer delivers transactional email. Implementations must return delivery
// failures to the caller.
type Mailer interface {
	Send(ctx context.Context, toEmail, toName, subject, content string) error
}

// PushNotifier delivers push notifications to device tokens.
type PushNotifier interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

// Cooldown rate-limits OTP delivery per key.
type Cooldown interface {
	Acquire(ctx context.Context, key string) (bool, error)
}
