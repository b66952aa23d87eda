package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh prefixed identifier, e.g. "exp-1f2d3c4b". The
// prefix names the record kind; uuid supplies the entropy. IDs are unique
// and stable, never ordered.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + raw[:9]
}
