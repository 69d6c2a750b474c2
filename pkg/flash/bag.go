package flash

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/flashkit/pkg/logger"
)

// Bag holds the full notification state for one named container. Messages
// are grouped into one Collection per type, created lazily on first access.
//
// A bag is a per-request object: construct it (or a Notifier owning it) at
// the start of a request and discard it afterwards. It performs no internal
// locking.
type Bag struct {
	container string

	store    Store
	renderer Renderer
	logger   *slog.Logger

	keyPrefix string
	scope     string

	format      string
	typeFormats map[Type]string

	types       []Type
	collections map[Type]*Collection

	err error
}

// BagOption configures a Bag at construction time.
type BagOption func(*Bag)

// WithStore attaches the persistence store used to flash and reload
// messages. Without a store the bag is purely in-memory: nothing survives
// the current cycle.
func WithStore(store Store) BagOption {
	return func(b *Bag) {
		b.store = store
	}
}

// WithRenderer replaces the default placeholder renderer.
func WithRenderer(r Renderer) BagOption {
	return func(b *Bag) {
		b.renderer = r
	}
}

// WithLogger sets the logger used for store warnings. Logging is silent by
// default.
func WithLogger(log *slog.Logger) BagOption {
	return func(b *Bag) {
		if log != nil {
			b.logger = log
		}
	}
}

// WithDefaultFormat sets the bag's global default render format.
func WithDefaultFormat(format string) BagOption {
	return func(b *Bag) {
		b.format = format
	}
}

// WithTypeFormats sets per-type default formats, which take precedence over
// the global default.
func WithTypeFormats(formats map[Type]string) BagOption {
	return func(b *Bag) {
		for typ, format := range formats {
			b.typeFormats[typ] = format
		}
	}
}

// WithKeyPrefix overrides the store key prefix, "notifications_" by default.
func WithKeyPrefix(prefix string) BagOption {
	return func(b *Bag) {
		b.keyPrefix = prefix
	}
}

// WithScope appends a visitor scope to the store key so independent sessions
// sharing one store do not read each other's flashes.
func WithScope(scope string) BagOption {
	return func(b *Bag) {
		b.scope = scope
	}
}

// NewBag creates the bag for a container and immediately reloads whatever
// was flashed for it during the previous cycle. Reloaded messages come back
// non-flashable: they already survived a cycle and must not be persisted
// again, or they would be redisplayed forever.
func NewBag(ctx context.Context, container string, opts ...BagOption) *Bag {
	b := &Bag{
		container:   container,
		renderer:    defaultRenderer,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		keyPrefix:   "notifications_",
		typeFormats: make(map[Type]string),
		collections: make(map[Type]*Collection),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.load(ctx)

	return b
}

// Container returns the bag's container name.
func (b *Bag) Container() string {
	return b.container
}

// Add appends a message of the given type and re-flashes the bag's flashable
// set. The effective format is resolved as: explicit WithFormat option, then
// the per-type default, then the global default; empty means "unset" at
// every level.
//
// Adding a duplicate (same type and text) leaves the collection untouched
// but still rewrites the flash payload. Store failures do not interrupt the
// chain; they are logged and exposed through Err.
func (b *Bag) Add(ctx context.Context, typ Type, text string, opts ...MessageOption) *Bag {
	m := NewMessage(typ, text, opts...)

	if m.Format() == "" {
		m.SetFormat(b.Format(typ))
	}

	b.Get(typ).AddUnique(m)

	// The whole flashable set is rewritten on every add, duplicates
	// included. The payload is a single slot per container, so the rewrite
	// keeps it consistent with the in-memory state at all times. Quadratic
	// for bags accumulating many messages in one cycle.
	b.flash(ctx)

	return b
}

// Success adds a success message.
func (b *Bag) Success(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return b.Add(ctx, TypeSuccess, text, opts...)
}

// Error adds an error message.
func (b *Bag) Error(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return b.Add(ctx, TypeError, text, opts...)
}

// Info adds an info message.
func (b *Bag) Info(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return b.Add(ctx, TypeInfo, text, opts...)
}

// Warning adds a warning message.
func (b *Bag) Warning(ctx context.Context, text string, opts ...MessageOption) *Bag {
	return b.Add(ctx, TypeWarning, text, opts...)
}

// Get returns the collection for a type, creating an empty one on first
// access. The creation side effect is part of the contract: callers always
// receive a usable collection, and the new bucket counts towards Count.
func (b *Bag) Get(typ Type) *Collection {
	if c, ok := b.collections[typ]; ok {
		return c
	}

	c := NewCollection()
	b.collections[typ] = c
	b.types = append(b.types, typ)
	return c
}

// First returns the earliest message of a type, or ErrEmptyCollection.
func (b *Bag) First(typ Type) (*Message, error) {
	return b.Get(typ).First()
}

// All returns a new collection concatenating every type bucket, in bucket
// creation order then insertion order.
func (b *Bag) All() *Collection {
	all := NewCollection()
	for _, typ := range b.types {
		for _, m := range b.collections[typ].All() {
			all.AddUnique(m)
		}
	}
	return all
}

// SetFormat sets the global default render format.
func (b *Bag) SetFormat(format string) *Bag {
	b.format = format
	return b
}

// SetTypeFormat sets the default render format for one type.
func (b *Bag) SetTypeFormat(typ Type, format string) *Bag {
	b.typeFormats[typ] = format
	return b
}

// Format resolves the default format for a type: the per-type override wins
// over the global default. An empty type returns the global default.
func (b *Bag) Format(typ Type) string {
	if typ != "" {
		if format, ok := b.typeFormats[typ]; ok {
			return format
		}
	}
	return b.format
}

// Show renders the bag's non-flashable messages concatenated in order. An
// empty typ selects every bucket; a non-empty format overrides each rendered
// message's format in place.
//
// Flashable messages are never rendered by Show: they belong to the next
// cycle, where a fresh bag reloads them as non-flashable.
func (b *Bag) Show(typ Type, format string) string {
	var selection *Collection
	if typ == "" {
		selection = b.All()
	} else {
		selection = b.Get(typ)
	}

	var out []byte
	for _, m := range selection.All() {
		if m.IsFlashable() {
			continue
		}
		if format != "" {
			m.SetFormat(format)
		}
		out = append(out, m.Render(b.renderer)...)
	}

	return string(out)
}

// Count returns the number of type buckets, not the total message count.
// Buckets created empty by Get are included.
func (b *Bag) Count() int {
	return len(b.collections)
}

// Payload returns the store representation of every message in the bag.
func (b *Bag) Payload() []Payload {
	return b.All().Payload()
}

// ToJSON encodes the bag's messages as an ordered JSON array.
func (b *Bag) ToJSON() ([]byte, error) {
	return json.Marshal(b.Payload())
}

// String renders the whole bag with default formats.
func (b *Bag) String() string {
	return b.Show("", "")
}

// Err returns the last store error observed by Add, nil when every flash
// succeeded.
func (b *Bag) Err() error {
	return b.err
}

// key derives the store key for this bag's flash slot.
func (b *Bag) key() string {
	if b.scope == "" {
		return b.keyPrefix + b.container
	}
	return b.keyPrefix + b.container + "." + b.scope
}

// flash persists the bag's entire flashable set, overwriting the previous
// payload for this container.
func (b *Bag) flash(ctx context.Context) {
	if b.store == nil {
		return
	}

	flashable := NewCollection()
	for _, typ := range b.types {
		for _, m := range b.collections[typ].All() {
			if m.IsFlashable() {
				flashable.AddUnique(m)
			}
		}
	}

	payload, err := json.Marshal(flashable)
	if err == nil {
		err = b.store.Flash(ctx, b.key(), string(payload))
	}
	if err != nil {
		b.err = err
		b.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to flash messages",
			logger.Container(b.container),
			logger.Error(err),
		)
	}
}

// load reconstructs previously flashed messages from the store. Everything
// comes back non-flashable, and loading never re-flashes. A malformed
// payload is discarded as if nothing had been flashed.
func (b *Bag) load(ctx context.Context) {
	if b.store == nil {
		return
	}

	raw, err := b.store.Get(ctx, b.key())
	if err != nil {
		if !errors.Is(err, ErrNoFlashData) {
			b.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to read flashed messages",
				logger.Container(b.container),
				logger.Error(err),
			)
		}
		return
	}

	var records []Payload
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		b.logger.LogAttrs(ctx, slog.LevelDebug, "Discarding malformed flash payload",
			logger.Container(b.container),
			logger.Error(err),
		)
		return
	}

	for _, rec := range records {
		m := NewMessage(rec.Type, rec.Message, WithFlashable(false), WithFormat(rec.Format))
		b.Get(rec.Type).AddUnique(m)
	}
}
