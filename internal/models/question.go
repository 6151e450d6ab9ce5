package models

import "strings"

type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// DefaultLevel is used when a request does not name one.
const DefaultLevel = LevelMedium

// ValidLevels lists the accepted difficulty levels in display order.
var ValidLevels = []Level{LevelEasy, LevelMedium, LevelHard}

// ValidLevelSet renders ValidLevels as "{easy, medium, hard}".
func ValidLevelSet() string {
	names := make([]string, len(ValidLevels))
	for i, l := range ValidLevels {
		names[i] = string(l)
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func (l Level) Valid() bool {
	for _, v := range ValidLevels {
		if l == v {
			return true
		}
	}
	return false
}

// ── Core Structs ───────────────────────────────────────

// Question is a trivia question/answer pair. Level is only set for
// records read from the document store.
type Question struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Level    Level  `json:"level,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
