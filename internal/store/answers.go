package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnswerRecord captures one evaluated guess.
type AnswerRecord struct {
	QuestionID    string
	Category      string
	Difficulty    string
	Prompt        string
	CorrectAnswer string
	Guess         string
	Correct       bool
	AnsweredAt    time.Time
}

// Answers provides append and read access to the answer history.
type Answers interface {
	// Append records one evaluated guess.
	Append(ctx context.Context, rec AnswerRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]AnswerRecord, error)

	// Stats returns the total number of answers and how many were correct.
	Stats(ctx context.Context) (total, correct int, err error)
}

type answerRepo struct {
	db *sql.DB
}

func (r *answerRepo) Append(ctx context.Context, rec AnswerRecord) error {
	correct := 0
	if rec.Correct {
		correct = 1
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(question_id, category, difficulty, prompt, correct_answer, guess, correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.QuestionID, rec.Category, rec.Difficulty, rec.Prompt,
		rec.CorrectAnswer, rec.Guess, correct, rec.AnsweredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert answer event: %w", err)
	}
	return nil
}

func (r *answerRepo) Recent(ctx context.Context, limit int) ([]AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_id, category, difficulty, prompt, correct_answer, guess, correct, answered_at
		 FROM answer_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var records []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		var correct int
		var answeredAt string
		if err := rows.Scan(&rec.QuestionID, &rec.Category, &rec.Difficulty, &rec.Prompt,
			&rec.CorrectAnswer, &rec.Guess, &correct, &answeredAt); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Correct = correct != 0
		if t, err := time.Parse(time.RFC3339, answeredAt); err == nil {
			rec.AnsweredAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *answerRepo) Stats(ctx context.Context) (int, int, error) {
	var total, correct int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM answer_events`,
	).Scan(&total, &correct)
	if err != nil {
		return 0, 0, fmt.Errorf("count answer events: %w", err)
	}
	return total, correct, nil
}
