package questions

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trivia-quest/backend/internal/docstore"
)

func TestSeed(t *testing.T) {
	store := docstore.NewMemoryStore()
	input := `[
		{"question": "What is 2+2?", "answer": "4", "level": "easy"},
		{"question": "Largest planet?", "answer": "Jupiter", "level": "Medium"}
	]`

	n, err := Seed(context.Background(), store, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	docs, err := store.Where(context.Background(), Collection, "level", "medium")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Jupiter", docs[0]["answer"])
}

func TestSeed_RejectsBadRecordsBeforeWriting(t *testing.T) {
	tests := []string{
		`[{"question": "Q", "answer": "A", "level": "easy"}, {"question": "Q", "answer": "A", "level": "expert"}]`,
		`[{"question": "Q", "answer": "A", "level": "easy"}, {"question": "", "answer": "A", "level": "easy"}]`,
		`[{"question": "Q", "answer": "A"}]`,
	}

	for _, input := range tests {
		store := docstore.NewMemoryStore()

		_, err := Seed(context.Background(), store, strings.NewReader(input))
		require.Error(t, err, input)

		docs, err := store.Where(context.Background(), Collection, "level", "easy")
		require.NoError(t, err)
		assert.Empty(t, docs, input)
	}
}

func TestSeed_InvalidJSON(t *testing.T) {
	_, err := Seed(context.Background(), docstore.NewMemoryStore(), strings.NewReader(`{"not": "an array"}`))
	assert.ErrorContains(t, err, "decode seed file")
}

func TestSeed_ValidatesQuestionModelTags(t *testing.T) {
	input := `[{"question": "Q", "answer": "", "level": "easy"}]`

	_, err := Seed(context.Background(), docstore.NewMemoryStore(), strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Question.Answer")
	assert.Contains(t, err.Error(), "required")
}
