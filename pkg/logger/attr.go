package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Container records a notification container name under the key "container".
func Container(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("container", name)
}

// MessageType records a notification type under the key "message_type".
func MessageType(typ string) slog.Attr {
	if typ == "" {
		return slog.Attr{}
	}
	return slog.String("message_type", typ)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}
