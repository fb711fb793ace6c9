package question

import (
	"context"
	"sort"
)

// Result is a filtered view over the question store. Total counts the whole
// view, independent of any page window later applied to Questions.
type Result struct {
	Questions []Question
	Total     int
}

// Engine builds the read views used by the listing, search and category endpoints.
type Engine struct {
	store QuestionStore
}

func NewEngine(store QuestionStore) *Engine {
	return &Engine{store: store}
}

// ListAll returns every question ordered by ascending id.
func (e *Engine) ListAll(ctx context.Context) (Result, error) {
	return e.view(ctx, Filter{})
}

// Search returns the questions whose text contains term, ignoring case.
// An empty term matches every question.
func (e *Engine) Search(ctx context.Context, term string) (Result, error) {
	return e.view(ctx, Filter{Term: &term})
}

// ByCategory returns the questions of one category. An unknown category is an
// empty result, not an error.
func (e *Engine) ByCategory(ctx context.Context, categoryID int64) (Result, error) {
	return e.view(ctx, Filter{CategoryID: &categoryID})
}

func (e *Engine) view(ctx context.Context, filter Filter) (Result, error) {
	qs, err := e.store.ListQuestions(ctx, filter)
	if err != nil {
		return Result{}, err
	}
	sortByID(qs)
	return Result{Questions: qs, Total: len(qs)}, nil
}

// sortByID fixes page boundaries regardless of the order the store returned.
func sortByID(qs []Question) {
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
}
