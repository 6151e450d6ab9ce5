package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/trivia-quest/backend/internal/models"
)

const (
	questionMarker = "Question:"
	answerMarker   = "Answer:"
)

// parseStrategy tries to read a question/answer pair out of free text.
type parseStrategy func(text string) (models.Question, bool)

// parseStrategies run in order; the first that matches wins.
var parseStrategies = []parseStrategy{
	parseMarkerPair,
	parseAnswerOnly,
	parseLines,
}

// ParseQuestion extracts a question/answer pair from raw model output.
// It is a best-effort heuristic: output with stray or repeated markers can
// produce odd fields, and text with no markers and a single line yields
// nothing.
func ParseQuestion(text string) (models.Question, bool) {
	for _, parse := range parseStrategies {
		if q, ok := parse(text); ok {
			return q, true
		}
	}
	return models.Question{}, false
}

// parseMarkerPair handles "... Question: <q> Answer: <a>". The question is
// the segment after the first "Question:" cut at its first "Answer:"; the
// answer is the segment between the first and second "Answer:" of the text.
func parseMarkerPair(text string) (models.Question, bool) {
	if !strings.Contains(text, questionMarker) || !strings.Contains(text, answerMarker) {
		return models.Question{}, false
	}

	afterQuestion := strings.Split(text, questionMarker)[1]
	question := strings.Split(afterQuestion, answerMarker)[0]
	answer := strings.Split(text, answerMarker)[1]

	return models.Question{
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}, true
}

// parseAnswerOnly handles "<q> Answer: <a>". The question may be empty.
func parseAnswerOnly(text string) (models.Question, bool) {
	question, answer, found := strings.Cut(text, answerMarker)
	if !found {
		return models.Question{}, false
	}
	return models.Question{
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}, true
}

// parseLines takes the first line as the question and the second as the
// answer.
func parseLines(text string) (models.Question, bool) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return models.Question{}, false
	}
	return models.Question{
		Question: strings.TrimSpace(lines[0]),
		Answer:   strings.TrimSpace(lines[1]),
	}, true
}

// splitLines breaks text at \n, \r\n, \r, \v, \f, \x1c-\x1e, U+0085,
// U+2028 and U+2029. A trailing line break does not add an empty final
// line, and empty text has no lines.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i, r := range text {
		if !isLineBreak(r) {
			continue
		}
		if i < start {
			// second half of \r\n
			continue
		}
		lines = append(lines, text[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && strings.HasPrefix(text[start:], "\n") {
			start++
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
