package generator

import (
	"fmt"
	"unicode/utf8"
)

// ServiceError wraps a failed call to the text-generation backend.
type ServiceError struct {
	Model string
	Err   error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("generation service %s: %v", e.Model, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ParseError means the backend answered but no question/answer pair could
// be read from its output.
type ParseError struct {
	Content string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse question from generated text %q", truncate(e.Content, 200))
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
