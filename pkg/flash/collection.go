package flash

import "encoding/json"

// Collection is an ordered, duplicate-free sequence of messages. Insertion
// order is preserved; uniqueness is judged by Message.Equal, i.e. (type, text).
type Collection struct {
	messages []*Message
}

// NewCollection creates a collection, deduplicating the given messages.
func NewCollection(messages ...*Message) *Collection {
	c := &Collection{}
	for _, m := range messages {
		c.AddUnique(m)
	}
	return c
}

// AddUnique appends the message unless an equal one is already present.
// It returns the collection for chaining.
func (c *Collection) AddUnique(m *Message) *Collection {
	if m == nil || c.Contains(m) {
		return c
	}
	c.messages = append(c.messages, m)
	return c
}

// Contains reports whether an equal message is already in the collection.
func (c *Collection) Contains(m *Message) bool {
	for _, existing := range c.messages {
		if existing.Equal(m) {
			return true
		}
	}
	return false
}

// First returns the earliest-inserted message, or ErrEmptyCollection when
// the collection is empty. A hard error was chosen over a nil sentinel so a
// forgotten emptiness check fails loudly instead of dereferencing nil later.
func (c *Collection) First() (*Message, error) {
	if len(c.messages) == 0 {
		return nil, ErrEmptyCollection
	}
	return c.messages[0], nil
}

// All returns the messages in insertion order. The returned slice is shared
// with the collection; callers must not reorder it.
func (c *Collection) All() []*Message {
	return c.messages
}

// Len returns the number of messages.
func (c *Collection) Len() int {
	return len(c.messages)
}

// Payload maps every message through Message.Payload, preserving order.
func (c *Collection) Payload() []Payload {
	payload := make([]Payload, 0, len(c.messages))
	for _, m := range c.messages {
		payload = append(payload, m.Payload())
	}
	return payload
}

// MarshalJSON encodes the collection as an ordered array of message payloads.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Payload())
}
