package question

import "context"

// PageSize is the fixed number of questions per page.
const PageSize = 10

// Question is a trivia question as delivered to clients.
type Question struct {
	ID         int64  `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the fields of a question before the store assigns an id.
type NewQuestion struct {
	Text       string
	Answer     string
	CategoryID int64
	Difficulty int
}

// Filter selects questions. Nil fields match everything.
type Filter struct {
	// Term matches question text case-insensitively as a substring.
	Term       *string
	CategoryID *int64
	Exclude    []int64
}

// QuestionStore is the persistence boundary for questions.
type QuestionStore interface {
	ListQuestions(ctx context.Context, filter Filter) ([]Question, error)
	CreateQuestion(ctx context.Context, q NewQuestion) (Question, error)
	// DeleteQuestion returns ErrQuestionNotFound when id is absent.
	DeleteQuestion(ctx context.Context, id int64) error
}

// CategoryStore is the read-only persistence boundary for categories.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
	// GetCategory returns ErrCategoryNotFound when id is absent.
	GetCategory(ctx context.Context, id int64) (Category, error)
}
