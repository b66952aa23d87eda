package assist

import (
	"fmt"
	"strings"
	"time"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// ExtractJSON pulls the first top-level JSON object out of the model's raw
// text: markdown code fences are stripped, then everything from the first
// '{' to the last '}' is taken. Returns false when no object boundaries
// exist.
func ExtractJSON(raw string) (string, bool) {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return "", false
	}
	return s[first : last+1], true
}

func validDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func errMissingField(field string) error {
	return fmt.Errorf("assist: payload field %s is missing or malformed", field)
}
