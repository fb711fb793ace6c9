package queries

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listQuestions = `
SELECT id, question, answer, category_id, difficulty
FROM questions
WHERE ($1::text IS NULL OR question ILIKE $1::text ESCAPE '\')
  AND ($2::bigint IS NULL OR category_id = $2::bigint)
  AND NOT (id = ANY(COALESCE($3::bigint[], '{}'::bigint[])))
ORDER BY id
`

// ListQuestionsParams narrows a question scan. Null fields do not filter.
type ListQuestionsParams struct {
	Pattern    pgtype.Text
	CategoryID pgtype.Int8
	ExcludeIDs []int64
}

func (q *Queries) ListQuestions(ctx context.Context, arg ListQuestionsParams) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions, arg.Pattern, arg.CategoryID, arg.ExcludeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Question{}
	for rows.Next() {
		var i Question
		if err := rows.Scan(&i.ID, &i.Question, &i.Answer, &i.CategoryID, &i.Difficulty); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertQuestion = `
INSERT INTO questions (question, answer, category_id, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category_id, difficulty
`

type InsertQuestionParams struct {
	Question   string
	Answer     string
	CategoryID int64
	Difficulty int32
}

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, insertQuestion, arg.Question, arg.Answer, arg.CategoryID, arg.Difficulty)
	var i Question
	err := row.Scan(&i.ID, &i.Question, &i.Answer, &i.CategoryID, &i.Difficulty)
	return i, err
}

const deleteQuestion = `DELETE FROM questions WHERE id = $1`

// DeleteQuestion returns the number of rows removed (0 or 1).
func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
