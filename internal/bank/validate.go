package bank

import (
	"encoding/json"
	"fmt"

	"github.com/quizboard/quizboard-backend/internal/model"
)

// Issue is a single structural violation found in a bank file.
// Category and Question are 1-indexed ordinals for user display; zero means
// the issue is not scoped to a category or question.
type Issue struct {
	Category int    `json:"category,omitempty"`
	Question int    `json:"question,omitempty"`
	Message  string `json:"message"`
}

func (i Issue) String() string {
	switch {
	case i.Category > 0 && i.Question > 0:
		return fmt.Sprintf("category %d, question %d: %s", i.Category, i.Question, i.Message)
	case i.Category > 0:
		return fmt.Sprintf("category %d: %s", i.Category, i.Message)
	default:
		return i.Message
	}
}

// Result is the outcome of diagnostic validation: the first violation in
// document order plus a count of the remaining ones, for user display.
type Result struct {
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
}

// Summary renders the result for user display: the first error, with a
// note about how many more were found.
func (r Result) Summary() string {
	if r.Valid {
		return ""
	}
	if r.Remaining > 0 {
		return fmt.Sprintf("%s (and %d more errors)", r.Error, r.Remaining)
	}
	return r.Error
}

// Strict reports whether raw is a well-formed bank file. On top of the
// shared structural rules it requires a non-empty "subject" string. Used
// for auto-discovered banks, where a bad file is skipped, not explained.
func Strict(raw []byte) bool {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return false
	}

	root, ok := data.(map[string]any)
	if !ok {
		return false
	}
	if subject, ok := root["subject"].(string); !ok || subject == "" {
		return false
	}

	return len(check(data)) == 0
}

// Diagnostic validates raw for interactive upload. Unlike Strict it does
// not require "subject", and it reports the first violation with a count
// of the rest so the user gets an actionable message.
func Diagnostic(raw []byte) Result {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return Result{Error: "invalid JSON"}
	}

	issues := check(data)
	if len(issues) == 0 {
		return Result{Valid: true}
	}
	return Result{
		Error:     issues[0].String(),
		Remaining: len(issues) - 1,
	}
}

// CheckBank re-verifies an already-decoded bank, e.g. the uploaded bank
// embedded in a restored session, against the shared rules.
func CheckBank(b *model.QuestionBank) bool {
	if b == nil {
		return false
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return false
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return false
	}
	return len(check(data)) == 0
}

// check walks the untyped JSON value and collects every violation of the
// shared structural rules, in document order. It is deliberately not
// fail-fast so diagnostic callers can report a complete picture.
func check(data any) []Issue {
	var issues []Issue

	root, ok := data.(map[string]any)
	if !ok {
		return []Issue{{Message: "expected a JSON object"}}
	}

	categories, ok := root["categories"].([]any)
	if !ok {
		return []Issue{{Message: `missing "categories" field or it is not an array`}}
	}
	if len(categories) == 0 {
		return []Issue{{Message: "categories array must not be empty"}}
	}

	for i, rawCat := range categories {
		catNum := i + 1

		cat, ok := rawCat.(map[string]any)
		if !ok {
			issues = append(issues, Issue{Category: catNum, Message: "expected a JSON object"})
			continue
		}

		if !present(cat["id"]) {
			issues = append(issues, Issue{Category: catNum, Message: `missing "id" field`})
		}
		if name, ok := cat["name"].(string); !ok || name == "" {
			issues = append(issues, Issue{Category: catNum, Message: `missing or invalid "name" field`})
		}

		questions, ok := cat["questions"].([]any)
		if !ok {
			issues = append(issues, Issue{Category: catNum, Message: `missing or invalid "questions" field`})
			continue
		}
		if len(questions) == 0 {
			issues = append(issues, Issue{Category: catNum, Message: "questions array must not be empty"})
			continue
		}

		for j, rawQ := range questions {
			qNum := j + 1

			q, ok := rawQ.(map[string]any)
			if !ok {
				issues = append(issues, Issue{Category: catNum, Question: qNum, Message: "expected a JSON object"})
				continue
			}

			if text, ok := q["text"].(string); !ok || text == "" {
				issues = append(issues, Issue{Category: catNum, Question: qNum, Message: `missing or invalid "text" field`})
			}

			options, hasOptions := q["options"].([]any)
			if !hasOptions {
				issues = append(issues, Issue{Category: catNum, Question: qNum, Message: `missing or invalid "options" field`})
			} else if len(options) < 2 {
				issues = append(issues, Issue{Category: catNum, Question: qNum, Message: "must have at least 2 answer options"})
			}

			if ca, ok := q["correctAnswer"].(float64); !ok {
				issues = append(issues, Issue{Category: catNum, Question: qNum, Message: `missing or invalid "correctAnswer" field`})
			} else if ca < 0 || (hasOptions && ca >= float64(len(options))) {
				issues = append(issues, Issue{Category: catNum, Question: qNum, Message: "correct answer index is out of options range"})
			}

			if points, ok := q["points"].(float64); !ok || points <= 0 {
				issues = append(issues, Issue{Category: catNum, Question: qNum, Message: `"points" must be a positive number`})
			}
		}
	}

	return issues
}

// present mirrors the truthiness test the board UI applies to ids: null,
// missing, empty string, zero and false all count as absent.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0
	case bool:
		return val
	default:
		return true
	}
}
