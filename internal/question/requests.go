package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FlexInt decodes a JSON number or a numeric string such as "3". Browser
// form clients send category and difficulty as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexInt(n)
	return nil
}

// CreateQuestionRequest is the body of POST /questions.
type CreateQuestionRequest struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	Category   *FlexInt `json:"category" validate:"required"`
	Difficulty *FlexInt `json:"difficulty" validate:"required,min=-2147483648,max=2147483647"`
}

// ToNewQuestion converts a validated request.
func (r CreateQuestionRequest) ToNewQuestion() NewQuestion {
	return NewQuestion{
		Text:       r.Question,
		Answer:     r.Answer,
		CategoryID: int64(*r.Category),
		Difficulty: int(*r.Difficulty),
	}
}

// SearchRequest is the body of POST /questions/search. An empty term is
// valid; a missing one is not.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

// QuizCategory identifies the category of a quiz round; id 0 means all.
type QuizCategory struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type,omitempty"`
}

// PlayQuizRequest is the body of POST /quizzes.
type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int64       `json:"previous_questions"`
}

// CategoryFilter returns nil when the round spans all categories.
func (r PlayQuizRequest) CategoryFilter() *int64 {
	if r.QuizCategory == nil || r.QuizCategory.ID == 0 {
		return nil
	}
	id := int64(r.QuizCategory.ID)
	return &id
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct tags on a request and reports the first failing
// field as a *ValidationError.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
		if fe.Tag() == "min" || fe.Tag() == "max" {
			msg = fmt.Sprintf("%s is out of range", fe.Field())
		}
		return &ValidationError{Field: fe.Field(), Message: msg}
	}
	return err
}
