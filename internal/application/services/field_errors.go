package services

import (
	"sort"
	"strings"
)

// FieldErrors maps form field names to human-readable validation messages,
// so the client can render each message next to its field.
type FieldErrors map[string]string

// Error implements the error interface
func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
