package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/trivia-quest/backend/internal/docstore"
	"github.com/trivia-quest/backend/internal/models"
)

// Seed reads a JSON array of {question, answer, level} records and inserts
// them into the questions collection. Every record is validated before the
// first insert, so a bad file writes nothing. Levels are lowercased and
// required.
func Seed(ctx context.Context, store docstore.Store, r io.Reader) (int, error) {
	var records []models.Question
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	for i := range records {
		records[i].Level = models.Level(strings.ToLower(string(records[i].Level)))
		if err := validate.Struct(records[i]); err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		if records[i].Level == "" {
			return 0, fmt.Errorf("record %d: level is required", i)
		}
	}

	for i, rec := range records {
		doc := docstore.Document{
			"question": rec.Question,
			"answer":   rec.Answer,
			"level":    string(rec.Level),
		}
		if err := store.Insert(ctx, Collection, doc); err != nil {
			return i, fmt.Errorf("insert record %d: %w", i, err)
		}
	}
	return len(records), nil
}
