package questions

import (
	"errors"
	"fmt"

	"github.com/trivia-quest/backend/internal/models"
)

// LevelError rejects a difficulty level outside models.ValidLevels.
type LevelError struct {
	Value string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("Invalid level: %s. Valid levels are %s", e.Value, models.ValidLevelSet())
}

// ErrNoQuestions means the store answered but holds nothing for the level.
var ErrNoQuestions = errors.New("no questions found for this level")

// UpstreamError wraps a failure from an external collaborator. Error()
// carries the full chain for logs; Detail() is the caller-safe summary.
type UpstreamError struct {
	Service string
	Op      string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Detail() string {
	return fmt.Sprintf("%s %s failed", e.Service, e.Op)
}
