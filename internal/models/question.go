package models

import (
	"encoding/json"
	"strings"
)

// QuestionType says who a question is meant for
type QuestionType string

// QuestionStatus tracks whether a question has been dealt with
type QuestionStatus string

const (
	QuestionConsultant QuestionType = "consultant"
	QuestionGP         QuestionType = "gp"
	QuestionNurse      QuestionType = "nurse"
	QuestionOther      QuestionType = "other"

	QuestionUnasked  QuestionStatus = "unasked"
	QuestionAnswered QuestionStatus = "answered"
)

// QuestionTypes lists the known question types in display order
var QuestionTypes = []QuestionType{QuestionConsultant, QuestionGP, QuestionNurse, QuestionOther}

// Question is something to raise at the next appointment.
type Question struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Type      QuestionType   `json:"type"`
	Status    QuestionStatus `json:"status"`
	Answer    string         `json:"answer,omitempty"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

// ParseQuestionType returns the question type named by s and whether it is known.
func ParseQuestionType(s string) (QuestionType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range QuestionTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ParseQuestionStatus returns the status named by s and whether it is known.
func ParseQuestionStatus(s string) (QuestionStatus, bool) {
	switch QuestionStatus(strings.ToLower(strings.TrimSpace(s))) {
	case QuestionUnasked:
		return QuestionUnasked, true
	case QuestionAnswered:
		return QuestionAnswered, true
	}
	return "", false
}

// DecodeQuestions parses a stored question list. Elements that are not
// objects or lack an id or text are dropped. Unknown types become "other"
// and unknown statuses become "unasked". A document that is not a JSON array
// yields an empty list.
func DecodeQuestions(data []byte) []Question {
	var raws []any
	if err := json.Unmarshal(data, &raws); err != nil {
		return []Question{}
	}

	questions := make([]Question, 0, len(raws))
	for _, elem := range raws {
		raw, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		str := func(key string) string {
			s, _ := raw[key].(string)
			return s
		}

		q := Question{
			ID:        str("id"),
			Text:      strings.TrimSpace(str("text")),
			Answer:    str("answer"),
			CreatedAt: str("createdAt"),
			UpdatedAt: str("updatedAt"),
		}
		if q.ID == "" || q.Text == "" {
			continue
		}
		if t, ok := ParseQuestionType(str("type")); ok {
			q.Type = t
		} else {
			q.Type = QuestionOther
		}
		if s, ok := ParseQuestionStatus(str("status")); ok {
			q.Status = s
		} else {
			q.Status = QuestionUnasked
		}
		questions = append(questions, q)
	}
	return questions
}
