package questions

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trivia-quest/backend/internal/docstore"
	"github.com/trivia-quest/backend/internal/generator"
	"github.com/trivia-quest/backend/internal/models"
)

// stubGenerator records calls and returns a fixed result.
type stubGenerator struct {
	calls int
	q     models.Question
	err   error
}

func (g *stubGenerator) GenerateQuestion(ctx context.Context, level models.Level) (models.Question, *generator.LLMResponse, error) {
	g.calls++
	return g.q, &generator.LLMResponse{Content: "raw"}, g.err
}

func TestService_GetQuestions_Exclusive(t *testing.T) {
	store := &countingStore{Store: docstore.NewMemoryStore()}
	require.NoError(t, store.Insert(context.Background(), Collection, docstore.Document{"question": "Q", "answer": "A", "level": "easy"}))
	gen := &stubGenerator{q: models.Question{Question: "GQ", Answer: "GA"}}
	svc := NewService(store, gen, zerolog.Nop())

	got, err := svc.GetQuestions(context.Background(), Request{Level: models.LevelEasy, UseAI: true})
	require.NoError(t, err)
	assert.Equal(t, []models.Question{{Question: "GQ", Answer: "GA"}}, got)
	assert.Equal(t, 1, gen.calls)
	assert.Zero(t, store.calls.Load())

	got, err = svc.GetQuestions(context.Background(), Request{Level: models.LevelEasy})
	require.NoError(t, err)
	assert.Equal(t, []models.Question{{Question: "Q", Answer: "A", Level: models.LevelEasy}}, got)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, int32(1), store.calls.Load())
}

func TestService_StoredQuestions_Errors(t *testing.T) {
	boom := errors.New("network unreachable")
	store := &countingStore{Store: docstore.NewMemoryStore(), err: boom}
	svc := NewService(store, &stubGenerator{}, zerolog.Nop())

	_, err := svc.StoredQuestions(context.Background(), models.LevelHard)

	var up *UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "storage", up.Service)
	assert.Equal(t, "query", up.Op)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "storage query failed", up.Detail())
}

func TestService_StoredQuestions_Empty(t *testing.T) {
	svc := NewService(docstore.NewMemoryStore(), &stubGenerator{}, zerolog.Nop())

	_, err := svc.StoredQuestions(context.Background(), models.LevelHard)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestService_GeneratedQuestion_PassesErrorsThrough(t *testing.T) {
	parseErr := &generator.ParseError{Content: "x"}
	svc := NewService(docstore.NewMemoryStore(), &stubGenerator{err: parseErr}, zerolog.Nop())

	_, err := svc.GetQuestions(context.Background(), Request{Level: models.LevelEasy, UseAI: true})

	var pe *generator.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestDecodeQuestion(t *testing.T) {
	q, err := decodeQuestion(docstore.Document{"question": "Q", "answer": "A"})
	require.NoError(t, err)
	assert.Equal(t, models.Question{Question: "Q", Answer: "A"}, q)

	_, err = decodeQuestion(docstore.Document{"answer": "A"})
	assert.ErrorContains(t, err, `"question"`)

	_, err = decodeQuestion(docstore.Document{"question": "Q", "answer": nil})
	assert.ErrorContains(t, err, `"answer"`)
}
