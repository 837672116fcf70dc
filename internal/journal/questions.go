package journal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/daylog/internal/models"
)

// minQuestionRef is the shortest id prefix ResolveQuestion accepts.
const minQuestionRef = 4

// QuestionUpdate names the fields to change on a question. Nil fields are
// left as they are.
type QuestionUpdate struct {
	Text   *string
	Type   *models.QuestionType
	Status *models.QuestionStatus
	Answer *string
}

// AddQuestion returns questions with a new unasked question appended.
func (j *Journal) AddQuestion(questions []models.Question, text string, kind models.QuestionType) ([]models.Question, models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.Question{}, fmt.Errorf("question text is required")
	}
	if _, ok := models.ParseQuestionType(string(kind)); !ok {
		return nil, models.Question{}, fmt.Errorf("unknown question type: %s", kind)
	}

	now := j.Timestamp()
	q := models.Question{
		ID:        j.newID(),
		Text:      text,
		Type:      kind,
		Status:    models.QuestionUnasked,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return append(slices.Clone(questions), q), q, nil
}

// UpdateQuestion applies upd to the question with id and refreshes its
// updatedAt. ok is false, and the list is returned unchanged, when no
// question has that id.
func (j *Journal) UpdateQuestion(questions []models.Question, id string, upd QuestionUpdate) ([]models.Question, bool) {
	next := slices.Clone(questions)
	idx := slices.IndexFunc(next, func(q models.Question) bool { return q.ID == id })
	if idx < 0 {
		return next, false
	}

	q := next[idx]
	if upd.Text != nil {
		if text := strings.TrimSpace(*upd.Text); text != "" {
			q.Text = text
		}
	}
	if upd.Type != nil {
		q.Type = *upd.Type
	}
	if upd.Status != nil {
		q.Status = *upd.Status
	}
	if upd.Answer != nil {
		q.Answer = strings.TrimSpace(*upd.Answer)
	}
	q.UpdatedAt = j.Timestamp()
	next[idx] = q
	return next, true
}

// DeleteQuestion returns questions without the one whose id matches.
func DeleteQuestion(questions []models.Question, id string) []models.Question {
	return slices.DeleteFunc(slices.Clone(questions), func(q models.Question) bool {
		return q.ID == id
	})
}

// ResolveQuestion finds a question by full id or by a unique id prefix of at
// least four characters.
func ResolveQuestion(questions []models.Question, ref string) (models.Question, error) {
	ref = strings.TrimSpace(ref)
	if idx := slices.IndexFunc(questions, func(q models.Question) bool { return q.ID == ref }); idx >= 0 {
		return questions[idx], nil
	}
	if len(ref) < minQuestionRef {
		return models.Question{}, fmt.Errorf("no question found: %s", ref)
	}

	var matches []models.Question
	for _, q := range questions {
		if strings.HasPrefix(q.ID, ref) {
			matches = append(matches, q)
		}
	}
	switch len(matches) {
	case 0:
		return models.Question{}, fmt.Errorf("no question found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Question{}, fmt.Errorf("question id %s is ambiguous (%d matches)", ref, len(matches))
	}
}
