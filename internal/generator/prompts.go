package generator

import (
	"fmt"

	"github.com/trivia-quest/backend/internal/models"
)

const questionPromptTemplate = "Create a trivia question and its answer. Difficulty: %s. Question:"

// BuildPrompt returns the single-shot prompt for one trivia question at the
// given difficulty. The level is the only variable part.
func BuildPrompt(level models.Level) string {
	return fmt.Sprintf(questionPromptTemplate, level)
}
