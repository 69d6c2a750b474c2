package flash

import (
	"context"
	"log/slog"
)

// Notifier is the per-request entry point of the package. It routes the
// typed shortcuts to a default container and hands out one lazily-created
// Bag per container name.
//
// Like Bag, a Notifier is meant to live for a single request and performs no
// internal locking.
type Notifier struct {
	cfg      Config
	formats  FormatMap
	store    Store
	renderer Renderer
	logger   *slog.Logger
	scope    string

	bags map[string]*Bag
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithNotifierStore attaches the persistence store shared by every bag the
// notifier creates.
func WithNotifierStore(store Store) NotifierOption {
	return func(n *Notifier) {
		n.store = store
	}
}

// WithNotifierRenderer replaces the renderer used by every bag.
func WithNotifierRenderer(r Renderer) NotifierOption {
	return func(n *Notifier) {
		n.renderer = r
	}
}

// WithNotifierLogger sets the logger passed down to bags.
func WithNotifierLogger(log *slog.Logger) NotifierOption {
	return func(n *Notifier) {
		n.logger = log
	}
}

// WithFormats supplies per-container, per-type default render formats. A
// container without an entry falls back to the FormatsCatchAll entry.
func WithFormats(formats FormatMap) NotifierOption {
	return func(n *Notifier) {
		n.formats = formats
	}
}

// WithNotifierScope scopes every bag's store key to one visitor session.
func WithNotifierScope(scope string) NotifierOption {
	return func(n *Notifier) {
		n.scope = scope
	}
}

// NewNotifier creates a notifier. Bags are not constructed until their
// container is first referenced.
func NewNotifier(cfg Config, opts ...NotifierOption) *Notifier {
	if cfg.DefaultContainer == "" {
		cfg.DefaultContainer = DefaultConfig().DefaultContainer
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}

	n := &Notifier{
		cfg:  cfg,
		bags: make(map[string]*Bag),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Container resolves a name to its bag, creating and caching the bag on
// first reference. An empty name selects the configured default container.
// Optional callbacks receive the bag before it is returned, for ad-hoc
// configuration such as setting formats.
func (n *Notifier) Container(ctx context.Context, name string, fns ...func(*Bag)) *Bag {
	if name == "" {
		name = n.cfg.DefaultContainer
	}

	bag, ok := n.bags[name]
	if !ok {
		bag = NewBag(ctx, name, n.bagOptions(name)...)
		n.bags[name] = bag
	}

	for _, fn := range fns {
		if fn != nil {
			fn(bag)
		}
	}

	return bag
}

// Get is an alias for Container without callbacks.
func (n *Notifier) Get(ctx context.Context, name string) *Bag {
	return n.Container(ctx, name)
}

// Success adds a success message to the default container.
func (n *Notifier) Success(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return n.Container(ctx, "").Success(ctx, text, opts...)
}

// Error adds an error message to the default container.
func (n *Notifier) Error(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return n.Container(ctx, "").Error(ctx, text, opts...)
}

// Warning adds a warning message to the default container.
func (n *Notifier) Warning(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return n.Container(ctx, "").Warning(ctx, text, opts...)
}

// Info adds an info message to the default container.
func (n *Notifier) Info(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return n.Container(ctx, "").Info(ctx, text, opts...)
}

// Show renders a container's pending messages. Empty container selects the
// default one; typ and format behave as in Bag.Show.
func (n *Notifier) Show(ctx context.Context, container string, typ Type, format string) string {
	return n.Container(ctx, container).Show(typ, format)
}

// bagOptions translates the notifier's configuration into options for one
// container's bag.
func (n *Notifier) bagOptions(name string) []BagOption {
	opts := []BagOption{
		WithKeyPrefix(n.cfg.KeyPrefix),
	}

	format := n.cfg.DefaultFormat
	if format == "" {
		format = DefaultFormat
	}
	opts = append(opts, WithDefaultFormat(format))

	if typeFormats := n.formats.ForContainer(name); typeFormats != nil {
		opts = append(opts, WithTypeFormats(typeFormats))
	}
	if n.store != nil {
		opts = append(opts, WithStore(n.store))
	}
	if n.renderer != nil {
		opts = append(opts, WithRenderer(n.renderer))
	}
	if n.logger != nil {
		opts = append(opts, WithLogger(n.logger))
	}
	if n.scope != "" {
		opts = append(opts, WithScope(n.scope))
	}

	return opts
}
