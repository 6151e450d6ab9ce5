package questions

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trivia-quest/backend/internal/docstore"
	"github.com/trivia-quest/backend/internal/generator"
	"github.com/trivia-quest/backend/internal/models"
)

// Collection is the document store collection holding stored questions.
const Collection = "questions"

// QuestionGenerator is the generated-question source. *generator.Generator
// satisfies it.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, level models.Level) (models.Question, *generator.LLMResponse, error)
}

type Service struct {
	store     docstore.Store
	generator QuestionGenerator
	log       zerolog.Logger
}

func NewService(store docstore.Store, gen QuestionGenerator, log zerolog.Logger) *Service {
	return &Service{store: store, generator: gen, log: log}
}

// GetQuestions runs exactly one of the two sources for a validated request.
func (s *Service) GetQuestions(ctx context.Context, req Request) ([]models.Question, error) {
	if req.UseAI {
		q, err := s.GeneratedQuestion(ctx, req.Level)
		if err != nil {
			return nil, err
		}
		return []models.Question{q}, nil
	}
	return s.StoredQuestions(ctx, req.Level)
}

// StoredQuestions returns every stored question whose level field equals
// level, in store order. An empty result is ErrNoQuestions; store failures
// and malformed records are *UpstreamError.
func (s *Service) StoredQuestions(ctx context.Context, level models.Level) ([]models.Question, error) {
	docs, err := s.store.Where(ctx, Collection, "level", string(level))
	if err != nil {
		return nil, &UpstreamError{Service: "storage", Op: "query", Err: err}
	}

	if len(docs) == 0 {
		return nil, ErrNoQuestions
	}

	out := make([]models.Question, 0, len(docs))
	for i, doc := range docs {
		q, err := decodeQuestion(doc)
		if err != nil {
			return nil, &UpstreamError{Service: "storage", Op: "decode", Err: fmt.Errorf("record %d: %w", i, err)}
		}
		out = append(out, q)
	}

	s.log.Debug().Str("level", string(level)).Int("count", len(out)).Msg("stored questions loaded")
	return out, nil
}

// GeneratedQuestion makes one generation call. Errors are the generator's
// *generator.ServiceError or *generator.ParseError.
func (s *Service) GeneratedQuestion(ctx context.Context, level models.Level) (models.Question, error) {
	q, resp, err := s.generator.GenerateQuestion(ctx, level)
	if err != nil {
		return models.Question{}, err
	}

	if resp != nil {
		s.log.Debug().
			Str("level", string(level)).
			Int("prompt_tokens", resp.PromptTokens).
			Int("output_tokens", resp.OutputTokens).
			Msg("question generated")
	}
	return q, nil
}

func decodeQuestion(doc docstore.Document) (models.Question, error) {
	question, ok := doc["question"].(string)
	if !ok {
		return models.Question{}, fmt.Errorf("field %q missing or not a string", "question")
	}
	answer, ok := doc["answer"].(string)
	if !ok {
		return models.Question{}, fmt.Errorf("field %q missing or not a string", "answer")
	}

	q := models.Question{Question: question, Answer: answer}
	if level, ok := doc["level"].(string); ok {
		q.Level = models.Level(level)
	}
	return q, nil
}
