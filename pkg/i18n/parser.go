package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes a translation document into per-language message maps.
type Parser interface {
	// Parse returns the messages keyed by language code.
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext can be parsed.
	// The leading dot is optional.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser from the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// languages converts the decoded top level into per-language maps. Every
// top-level value must itself be a map.
func languages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = messages
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no languages", ErrInvalidStructure)
	}
	return result, nil
}
