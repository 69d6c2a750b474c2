package flash

// Type represents the message type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Message is a single user-facing notification held by a bag. Two messages
// are considered the same when their type and text match; the format and the
// flashable flag never participate in identity, which is what drives
// deduplication inside a Collection.
type Message struct {
	typ       Type
	text      string
	flashable bool
	format    string
}

// MessageOption configures a Message at construction time. Options are also
// accepted by Bag.Add and its typed shortcuts.
type MessageOption func(*Message)

// WithFormat sets an explicit render format, overriding the per-type and
// global defaults of the owning bag.
func WithFormat(format string) MessageOption {
	return func(m *Message) {
		m.format = format
	}
}

// WithFlashable controls whether the message is persisted for the next
// request cycle (true, the default) or rendered within the current one.
func WithFlashable(flashable bool) MessageOption {
	return func(m *Message) {
		m.flashable = flashable
	}
}

// NewMessage creates a message. Messages are flashable by default and carry
// no format, meaning "use the bag's default" at render time.
func NewMessage(typ Type, text string, opts ...MessageOption) *Message {
	m := &Message{
		typ:       typ,
		text:      text,
		flashable: true,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Type returns the message type.
func (m *Message) Type() Type {
	return m.typ
}

// Text returns the raw message body.
func (m *Message) Text() string {
	return m.text
}

// IsFlashable reports whether the message is destined for the next cycle.
func (m *Message) IsFlashable() bool {
	return m.flashable
}

// Format returns the message's render format, empty when unset.
func (m *Message) Format() string {
	return m.format
}

// SetFormat overrides the render format in place. The persisted identity of
// the message is unaffected.
func (m *Message) SetFormat(format string) {
	m.format = format
}

// Equal reports message identity: same type and same text. Differing formats
// or flashable flags do not make two messages distinct.
func (m *Message) Equal(other *Message) bool {
	if other == nil {
		return false
	}
	return m.typ == other.typ && m.text == other.text
}

// Render produces the display string for the message using the given
// renderer. It is deterministic for a fixed (type, text, format) triple.
func (m *Message) Render(r Renderer) string {
	if r == nil {
		r = defaultRenderer
	}
	return r.Render(*m)
}

// Payload is the serialized form of a message as written to a flash store.
// The flashable flag is intentionally absent: everything reloaded from a
// store becomes non-flashable by construction, so persisting the flag would
// only invite re-flashing already-shown messages.
type Payload struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Format  string `json:"format,omitempty"`
}

// Payload returns the store representation of the message.
func (m *Message) Payload() Payload {
	return Payload{
		Type:    m.typ,
		Message: m.text,
		Format:  m.format,
	}
}
