package flash

import "context"

type notifierContextKey struct{}

// WithNotifier adds a notifier to the context.
func WithNotifier(ctx context.Context, n *Notifier) context.Context {
	return context.WithValue(ctx, notifierContextKey{}, n)
}

// FromContext retrieves the notifier from the context.
func FromContext(ctx context.Context) (*Notifier, bool) {
	n, ok := ctx.Value(notifierContextKey{}).(*Notifier)
	return n, ok
}

// MustFromContext retrieves the notifier from the context or panics.
func MustFromContext(ctx context.Context) *Notifier {
	n, ok := FromContext(ctx)
	if !ok {
		panic("flash: notifier not found in context")
	}
	return n
}
