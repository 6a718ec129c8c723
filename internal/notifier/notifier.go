package notifier

import (
	"context"
)

// Notifier sends user-facing notifications. Implementations must be safe
// for concurrent use; callers dispatch on goroutines and never block on it.
type Notifier interface {
	SendWelcome(ctx context.Context, email, name string) error
}

// Noop is used when no email provider is configured.
type Noop struct{}

func (Noop) SendWelcome(ctx context.Context, email, name string) error {
	return nil
}
