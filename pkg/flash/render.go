package flash

import "strings"

// DefaultFormat is the render format applied when neither the message, its
// type, nor the bag carries one.
const DefaultFormat = `<div class="alert alert-:type">:message</div>`

// Renderer turns a message into its display string. Implementations must be
// deterministic for a fixed (type, text, format) triple.
type Renderer interface {
	Render(m Message) string
}

// FormatRenderer renders a message by substituting the :type and :message
// placeholders of its format string. Messages without a format fall back to
// DefaultFormat.
type FormatRenderer struct{}

var defaultRenderer Renderer = FormatRenderer{}

// Render substitutes placeholders in the message's format.
func (FormatRenderer) Render(m Message) string {
	format := m.Format()
	if format == "" {
		format = DefaultFormat
	}

	return strings.NewReplacer(
		":message", m.Text(),
		":type", string(m.Type()),
	).Replace(format)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(m Message) string

// Render calls the wrapped function.
func (f RendererFunc) Render(m Message) string {
	return f(m)
}
