package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
)

type questionStore interface {
	ListQuestions(ctx context.Context, arg queries.ListQuestionsParams) ([]queries.Question, error)
	InsertQuestion(ctx context.Context, arg queries.InsertQuestionParams) (queries.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

// QuestionFilter selects questions. Nil fields do not restrict the result.
type QuestionFilter struct {
	Term       *string
	CategoryID *int64
	ExcludeIDs []int64
}

// QuestionRepository wraps the question statements.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns the questions matching filter ordered by ascending id.
func (r *QuestionRepository) List(ctx context.Context, filter QuestionFilter) ([]queries.Question, error) {
	params := queries.ListQuestionsParams{
		ExcludeIDs: filter.ExcludeIDs,
	}
	if filter.Term != nil {
		params.Pattern = pgtype.Text{String: ContainsPattern(*filter.Term), Valid: true}
	}
	if filter.CategoryID != nil {
		params.CategoryID = pgtype.Int8{Int64: *filter.CategoryID, Valid: true}
	}
	if params.ExcludeIDs == nil {
		params.ExcludeIDs = []int64{}
	}

	rows, err := r.store.ListQuestions(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return rows, nil
}

// Insert stores a question and returns the row with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params queries.InsertQuestionParams) (queries.Question, error) {
	row, err := r.store.InsertQuestion(ctx, params)
	if err != nil {
		return queries.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return row, nil
}

// Delete removes a question, returning ErrNotFound when no row had that id.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns a search term into an ILIKE pattern that matches the
// term literally anywhere in the text.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
