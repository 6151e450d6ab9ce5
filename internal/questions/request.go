package questions

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trivia-quest/backend/internal/models"
)

// Request is a validated /getQuestions query.
type Request struct {
	Level models.Level `validate:"oneof=easy medium hard"`
	UseAI bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseRequest reads level and use_ai from the query string. level is
// case-insensitive and defaults to medium when absent; a present but empty
// level is rejected like any other unknown value.
func ParseRequest(query url.Values) (Request, error) {
	level := string(models.DefaultLevel)
	if query.Has("level") {
		level = strings.ToLower(query.Get("level"))
	}

	req := Request{
		Level: models.Level(level),
		UseAI: ParseUseAI(query.Get("use_ai")),
	}

	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return Request{}, &LevelError{Value: level}
		}
		return Request{}, err
	}
	return req, nil
}

// ParseUseAI is true only for a case-insensitive "true". Anything else,
// including an empty or malformed value, is false.
func ParseUseAI(s string) bool {
	return strings.EqualFold(s, "true")
}
