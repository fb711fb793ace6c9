package question

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// memoryStore keeps questions in a map so ListQuestions returns them in no
// particular order, like a database without ORDER BY.
type memoryStore struct {
	mu         sync.Mutex
	nextID     int64
	questions  map[int64]Question
	categories map[int64]Category
	listErr    error
	createErr  error
	deleteErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID:     1,
		questions:  map[int64]Question{},
		categories: map[int64]Category{},
	}
}

var seedCategories = []Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

var seedQuestions = []NewQuestion{
	{Text: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: 4, Difficulty: 2},
	{Text: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", CategoryID: 4, Difficulty: 1},
	{Text: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", CategoryID: 5, Difficulty: 4},
	{Text: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", CategoryID: 5, Difficulty: 4},
	{Text: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", CategoryID: 5, Difficulty: 3},
	{Text: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", CategoryID: 6, Difficulty: 3},
	{Text: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", CategoryID: 6, Difficulty: 4},
	{Text: "Who invented Peanut Butter?", Answer: "George Washington Carver", CategoryID: 4, Difficulty: 2},
	{Text: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: 3, Difficulty: 2},
	{Text: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", CategoryID: 3, Difficulty: 3},
	{Text: "The Taj Mahal is located in which Indian city?", Answer: "Agra", CategoryID: 3, Difficulty: 2},
	{Text: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", CategoryID: 2, Difficulty: 1},
	{Text: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
	{Text: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", CategoryID: 2, Difficulty: 4},
	{Text: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", CategoryID: 2, Difficulty: 2},
	{Text: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: 1, Difficulty: 4},
	{Text: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
	{Text: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", CategoryID: 1, Difficulty: 4},
	{Text: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", CategoryID: 4, Difficulty: 4},
}

// seededStore holds the 19 questions (ids 1..19) across 6 categories.
func seededStore() *memoryStore {
	s := newMemoryStore()
	for _, c := range seedCategories {
		s.categories[c.ID] = c
	}
	for _, q := range seedQuestions {
		if _, err := s.CreateQuestion(context.Background(), q); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *memoryStore) ListQuestions(_ context.Context, filter Filter) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []Question
	for _, q := range s.questions {
		if matches(filter, q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memoryStore) CreateQuestion(_ context.Context, nq NewQuestion) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return Question{}, s.createErr
	}
	if nq.Text == "" || nq.Answer == "" {
		return Question{}, errors.New("check constraint violated")
	}
	q := Question{
		ID:         s.nextID,
		Text:       nq.Text,
		Answer:     nq.Answer,
		CategoryID: nq.CategoryID,
		Difficulty: nq.Difficulty,
	}
	s.questions[q.ID] = q
	s.nextID++
	return q, nil
}

func (s *memoryStore) DeleteQuestion(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.questions[id]; !ok {
		return ErrQuestionNotFound
	}
	delete(s.questions, id)
	return nil
}

func (s *memoryStore) ListCategories(_ context.Context) ([]Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]Category, 0, len(s.categories))
	for _, c := range seedCategories {
		if got, ok := s.categories[c.ID]; ok {
			out = append(out, got)
		}
	}
	return out, nil
}

func (s *memoryStore) GetCategory(_ context.Context, id int64) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func ids(qs []Question) []int64 {
	out := make([]int64, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func idRange(from, to int64) []int64 {
	var out []int64
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// matches applies filter the way the SQL query does: case-insensitive
// substring on text, exact category, id not excluded.
func matches(f Filter, q Question) bool {
	if f.Term != nil && !strings.Contains(strings.ToLower(q.Text), strings.ToLower(*f.Term)) {
		return false
	}
	if f.CategoryID != nil && q.CategoryID != *f.CategoryID {
		return false
	}
	for _, id := range f.Exclude {
		if id == q.ID {
			return false
		}
	}
	return true
}
