package storage

import (
	"encoding/json"
	"errors"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/models"
)

// LoadQuestions returns the stored question list. Like EntryStore it never
// fails: an unreadable or malformed document is logged and yields an empty
// list.
func LoadQuestions(slot Slot) []models.Question {
	data, err := slot.Get(constants.QuestionsKey)
	if errors.Is(err, ErrNotFound) {
		return []models.Question{}
	}
	if err != nil {
		logger.Warn("Failed to read questions", "key", constants.QuestionsKey, "error", err)
		return []models.Question{}
	}
	return models.DecodeQuestions(data)
}

// SaveQuestions replaces the stored question list. Failures are logged and
// leave the previous document in place.
func SaveQuestions(slot Slot, questions []models.Question) {
	if questions == nil {
		questions = []models.Question{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		logger.Warn("Failed to encode questions", "error", err)
		return
	}
	if err := slot.Set(constants.QuestionsKey, data); err != nil {
		logger.Warn("Failed to write questions", "key", constants.QuestionsKey, "error", err)
		return
	}
	logger.Debug("Saved questions", "questions", len(questions))
}
