package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil errors give an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Constraint records a constraint name or declaration.
func Constraint(name string) slog.Attr {
	return slog.String("constraint", name)
}

// TargetType records the Go type a constraint is bound to.
func TargetType(name string) slog.Attr {
	return slog.String("target_type", name)
}

// Zone records a zone-id policy.
func Zone(policy string) slog.Attr {
	if policy == "" {
		policy = "system"
	}
	return slog.String("zone", policy)
}

// Field records the validated field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Source records where a document or rule set was read from.
func Source(uri string) slog.Attr {
	return slog.String("source", uri)
}

// Count records a number of items.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
