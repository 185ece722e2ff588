package cli

import (
	"errors"
	"strings"
)

// ErrEmptyText rejects whitespace-only input before an action is ever
// constructed; the reducer itself never validates.
var ErrEmptyText = errors.New("text cannot be empty")

func validateText(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}
