package normalization

import (
  "strings"
)

// ParseInputString trims surrounding whitespace and case-folds to
// lowercase. Usernames and emails are always stored in this form so
// uniqueness checks are case-insensitive.
func ParseInputString(in string) string {
  return strings.ToLower(strings.TrimSpace(in))
}
