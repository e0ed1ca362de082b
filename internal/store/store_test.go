package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleRecord(id string, correct bool) AnswerRecord {
	return AnswerRecord{
		QuestionID:    id,
		Category:      "Science",
		Difficulty:    "easy",
		Prompt:        "Is the sky blue?",
		CorrectAnswer: "True",
		Guess:         "True",
		Correct:       correct,
		AnsweredAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAppendAndRecent(t *testing.T) {
	st := openTestStore(t)
	answers := st.Answers()
	ctx := context.Background()

	require.NoError(t, answers.Append(ctx, sampleRecord("q-1", true)))
	require.NoError(t, answers.Append(ctx, sampleRecord("q-2", false)))
	require.NoError(t, answers.Append(ctx, sampleRecord("q-3", true)))

	records, err := answers.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, "q-3", records[0].QuestionID)
	assert.Equal(t, "q-1", records[2].QuestionID)

	got := records[0]
	assert.Equal(t, "Science", got.Category)
	assert.Equal(t, "easy", got.Difficulty)
	assert.Equal(t, "Is the sky blue?", got.Prompt)
	assert.Equal(t, "True", got.CorrectAnswer)
	assert.Equal(t, "True", got.Guess)
	assert.True(t, got.Correct)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), got.AnsweredAt)
}

func TestRecentLimit(t *testing.T) {
	st := openTestStore(t)
	answers := st.Answers()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, answers.Append(ctx, sampleRecord("q", true)))
	}

	records, err := answers.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStats(t *testing.T) {
	st := openTestStore(t)
	answers := st.Answers()
	ctx := context.Background()

	total, correct, err := answers.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, correct)

	require.NoError(t, answers.Append(ctx, sampleRecord("q-1", true)))
	require.NoError(t, answers.Append(ctx, sampleRecord("q-2", false)))
	require.NoError(t, answers.Append(ctx, sampleRecord("q-3", true)))

	total, correct, err = answers.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, correct)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "test.db")

	st, err := Open(dsn)
	require.NoError(t, err)
	require.NoError(t, st.Answers().Append(context.Background(), sampleRecord("q-1", true)))
	require.NoError(t, st.Close())

	st2, err := Open(dsn)
	require.NoError(t, err)
	defer st2.Close()

	total, _, err := st2.Answers().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "trivia.db")
	t.Setenv("TRIVIA_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
