package question

import (
	"context"
	"time"
)

// Event types announced after a successful mutation.
const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// Event describes a change to the question store.
type Event struct {
	Type       string    `json:"type"`
	QuestionID int64     `json:"question_id"`
	CategoryID int64     `json:"category,omitempty"`
	At         time.Time `json:"at"`
}

// EventPublisher announces question changes to live listeners.
type EventPublisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Metrics receives domain counters from the handlers.
type Metrics interface {
	QuizDraw(outcome string)
	QuestionMutation(op string)
}

// Quiz draw outcomes reported to Metrics.
const (
	DrawOutcomeQuestion  = "question"
	DrawOutcomeExhausted = "exhausted"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

type nopMetrics struct{}

func (nopMetrics) QuizDraw(string)         {}
func (nopMetrics) QuestionMutation(string) {}
