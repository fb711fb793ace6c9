package question

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// RandSource yields integers uniformly distributed in [0, n).
type RandSource interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Selector draws quiz questions. It keeps no round state: callers send the
// ids already asked on every call.
type Selector struct {
	store QuestionStore

	mu  sync.Mutex
	rnd RandSource
}

func NewSelector(store QuestionStore, rnd RandSource) *Selector {
	if rnd == nil {
		rnd = NewRand(0)
	}
	return &Selector{store: store, rnd: rnd}
}

// Next picks one question of category (nil for all categories) whose id is
// not in previous. ok is false once every candidate has been asked or the
// category has no questions.
func (s *Selector) Next(ctx context.Context, category *int64, previous []int64) (q Question, ok bool, err error) {
	candidates, err := s.store.ListQuestions(ctx, Filter{CategoryID: category, Exclude: previous})
	if err != nil {
		return Question{}, false, err
	}
	if len(candidates) == 0 {
		return Question{}, false, nil
	}
	sortByID(candidates)

	s.mu.Lock()
	idx := s.rnd.IntN(len(candidates))
	s.mu.Unlock()

	return candidates[idx], true, nil
}
