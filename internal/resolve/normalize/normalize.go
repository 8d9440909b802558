// Package normalize implements the one transformation allowed on attribute
// values before they are stored or used to build blocking keys.
package normalize

import "strings"

// Normalize trims leading/trailing Unicode whitespace and case-folds v to
// lowercase. It reports false (no value) when v is empty or becomes empty
// after trimming.
func Normalize(v string) (string, bool) {
	t := strings.TrimSpace(v)
	if t == "" {
		return "", false
	}
	return strings.ToLower(t), true
}
