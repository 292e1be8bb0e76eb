package docstore

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docuvault/internal/config"
	"docuvault/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// simpleNamePattern forbids slashes, which are reserved for materialized paths.
var simpleNamePattern = regexp.MustCompile(`^[^/]+$`)

// validateSimpleName checks a folder or file name against the shared rules.
func validateSimpleName(name string, maxLength int) error {
	return validation.Validate(name,
		validation.Required,
		validation.Length(1, maxLength),
		validation.Match(simpleNamePattern).Error("name cannot contain slashes"),
	)
}

// normalizeTags trims, drops empties, and removes case-insensitive duplicates
// while preserving first-seen order.
func normalizeTags(tags []string) ([]string, error) {
	if len(tags) > config.MaxTagsPerDocument {
		return nil, fmt.Errorf("too many tags: %d (max %d)", len(tags), config.MaxTagsPerDocument)
	}

	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if len(tag) > config.MaxTagLength {
			return nil, fmt.Errorf("tag %q exceeds %d characters", tag, config.MaxTagLength)
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, tag)
	}
	return normalized, nil
}
