package models

import (
	"fmt"
	"strings"
	"time"
)

// RecordTag represents a tag on a run record.
// Tags can be simple (just a key) or key-value pairs.
//
// Examples:
//   - Simple tag: {TagKey: "baseline", TagValue: ""}
//   - Key-value tag: {TagKey: "machine", TagValue: "lab-2"}
//   - System tag: {TagKey: "system:starred", TagValue: ""}
type RecordTag struct {
	// ID is the unique identifier for this tag (UUID).
	ID string `json:"id"`

	// RecordID references the run record this tag belongs to.
	RecordID string `json:"recordId"`

	// TagKey is the tag name or key.
	// System tags are prefixed with "system:" (e.g., "system:starred").
	TagKey string `json:"tagKey"`

	// TagValue is the optional tag value for key-value tags.
	// Empty for simple tags.
	TagValue string `json:"tagValue,omitempty"`

	// CreatedAt is when this tag was created.
	CreatedAt time.Time `json:"createdAt"`
}

// ParseTag splits a tag string into key and value and validates the
// result. Only the first "=" separates key from value; a ":" is part
// of the key (that is how system tags like "system:starred" survive
// parsing intact). A tag with a blank key is rejected.
//
// Examples:
//   - "baseline" -> key="baseline", value=""
//   - "machine=lab-2" -> key="machine", value="lab-2"
//   - "system:starred" -> key="system:starred", value=""
func ParseTag(tag string) (key string, value string, err error) {
	parts := strings.SplitN(tag, "=", 2)
	key = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		value = strings.TrimSpace(parts[1])
	}
	if key == "" {
		return "", "", fmt.Errorf("invalid tag %q: empty key", tag)
	}
	return key, value, nil
}

// FormatTag formats a tag back to its string representation.
// Returns "key" for simple tags or "key=value" for key-value tags.
func (t *RecordTag) FormatTag() string {
	if t.TagValue == "" {
		return t.TagKey
	}
	return fmt.Sprintf("%s=%s", t.TagKey, t.TagValue)
}

// IsSystemTag checks if a tag is a system reserved tag.
// System tags are prefixed with "system:" and are used for internal
// functionality like starring records.
func (t *RecordTag) IsSystemTag() bool {
	return strings.HasPrefix(t.TagKey, "system:")
}
