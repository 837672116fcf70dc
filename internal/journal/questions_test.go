package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/daylog/internal/models"
)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%04d", prefix, n)
	}
}

func TestAddQuestion(t *testing.T) {
	j, _ := setupTestJournal(t)
	j = New(WithClock(j.now), WithIDs(sequentialIDs("q-")))

	var original []models.Question
	questions, q, err := j.AddQuestion(original, "  What are the next steps?  ", models.QuestionConsultant)
	require.NoError(t, err)

	assert.Nil(t, original)
	require.Len(t, questions, 1)
	assert.Equal(t, models.Question{
		ID:        "q-0001",
		Text:      "What are the next steps?",
		Type:      models.QuestionConsultant,
		Status:    models.QuestionUnasked,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}, q)
	assert.Equal(t, q, questions[0])
}

func TestAddQuestionRejectsBadInput(t *testing.T) {
	j, _ := setupTestJournal(t)

	_, _, err := j.AddQuestion(nil, "   ", models.QuestionGP)
	assert.ErrorContains(t, err, "text is required")

	_, _, err = j.AddQuestion(nil, "Why?", models.QuestionType("surgeon"))
	assert.ErrorContains(t, err, "unknown question type")
}

func TestAddQuestionDefaultIDsAreUnique(t *testing.T) {
	j := New()
	questions, a, err := j.AddQuestion(nil, "one", models.QuestionOther)
	require.NoError(t, err)
	_, b, err := j.AddQuestion(questions, "two", models.QuestionOther)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
}

func TestUpdateQuestion(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	j := New(WithClock(func() time.Time { return now }), WithIDs(sequentialIDs("q-")))

	questions, q, err := j.AddQuestion(nil, "Is the dose right?", models.QuestionGP)
	require.NoError(t, err)

	now = time.Date(2024, 3, 16, 18, 0, 0, 0, time.UTC)
	answered := models.QuestionAnswered
	answer := " Keep it as is "
	blank := ""
	next, ok := j.UpdateQuestion(questions, q.ID, QuestionUpdate{Status: &answered, Answer: &answer, Text: &blank})
	require.True(t, ok)

	assert.Equal(t, models.QuestionUnasked, questions[0].Status, "input list is unchanged")
	got := next[0]
	assert.Equal(t, models.QuestionAnswered, got.Status)
	assert.Equal(t, "Keep it as is", got.Answer)
	assert.Equal(t, "Is the dose right?", got.Text, "blank text is ignored")
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.Equal(t, laterNow, got.UpdatedAt)

	same, ok := j.UpdateQuestion(next, "missing", QuestionUpdate{Status: &answered})
	assert.False(t, ok)
	assert.Equal(t, next, same)
}

func TestDeleteQuestion(t *testing.T) {
	j, _ := setupTestJournal(t)
	j = New(WithClock(j.now), WithIDs(sequentialIDs("q-")))

	questions, a, _ := j.AddQuestion(nil, "first", models.QuestionNurse)
	questions, _, _ = j.AddQuestion(questions, "second", models.QuestionNurse)

	next := DeleteQuestion(questions, a.ID)
	assert.Len(t, questions, 2)
	require.Len(t, next, 1)
	assert.Equal(t, "second", next[0].Text)

	assert.Empty(t, DeleteQuestion(next, next[0].ID))
}

func TestResolveQuestion(t *testing.T) {
	questions := []models.Question{
		{ID: "abcd1234-0000", Text: "one"},
		{ID: "abcd5678-0000", Text: "two"},
		{ID: "ffff0000-0000", Text: "three"},
	}

	tests := []struct {
		ref     string
		want    string
		wantErr string
	}{
		{ref: "abcd5678-0000", want: "two"},
		{ref: "ffff", want: "three"},
		{ref: "abcd1", want: "one"},
		{ref: "abcd", wantErr: "ambiguous"},
		{ref: "ff", wantErr: "no question found"},
		{ref: "0000", wantErr: "no question found"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			q, err := ResolveQuestion(questions, tt.ref)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Text)
		})
	}
}
