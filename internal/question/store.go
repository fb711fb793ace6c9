package question

import (
	"context"
	"errors"
	"math"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

// PGStore adapts the Postgres repositories to QuestionStore and CategoryStore.
type PGStore struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
}

var (
	_ QuestionStore = (*PGStore)(nil)
	_ CategoryStore = (*PGStore)(nil)
)

func NewPGStore(questions *repository.QuestionRepository, categories *repository.CategoryRepository) *PGStore {
	return &PGStore{questions: questions, categories: categories}
}

func (s *PGStore) ListQuestions(ctx context.Context, filter Filter) ([]Question, error) {
	rows, err := s.questions.List(ctx, repository.QuestionFilter{
		Term:       filter.Term,
		CategoryID: filter.CategoryID,
		ExcludeIDs: filter.Exclude,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (s *PGStore) CreateQuestion(ctx context.Context, q NewQuestion) (Question, error) {
	if q.Difficulty < math.MinInt32 || q.Difficulty > math.MaxInt32 {
		return Question{}, &ValidationError{Field: "difficulty", Message: "difficulty is out of range"}
	}
	row, err := s.questions.Insert(ctx, queries.InsertQuestionParams{
		Question:   q.Text,
		Answer:     q.Answer,
		CategoryID: q.CategoryID,
		Difficulty: int32(q.Difficulty),
	})
	if err != nil {
		return Question{}, err
	}
	return toDomain(row), nil
}

func (s *PGStore) DeleteQuestion(ctx context.Context, id int64) error {
	err := s.questions.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrQuestionNotFound
	}
	return err
}

func (s *PGStore) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{ID: row.ID, Type: row.Type})
	}
	return out, nil
}

func (s *PGStore) GetCategory(ctx context.Context, id int64) (Category, error) {
	row, err := s.categories.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, err
	}
	return Category{ID: row.ID, Type: row.Type}, nil
}

func toDomain(row queries.Question) Question {
	return Question{
		ID:         row.ID,
		Text:       row.Question,
		Answer:     row.Answer,
		CategoryID: row.CategoryID,
		Difficulty: int(row.Difficulty),
	}
}
