package settingsapimodels

import (
	"strings"

	"interview-scorer-backend/models"
)

type FeedbackSetting struct {
	Label string  `json:"label" yaml:"label"`
	Score float64 `json:"score" yaml:"score"`
}

// Settings глобальная шкала оценок для прямых и косвенных вопросов
type Settings struct {
	Direct   map[models.DirectFeedback]FeedbackSetting   `json:"direct" yaml:"direct"`
	Indirect map[models.IndirectFeedback]FeedbackSetting `json:"indirect" yaml:"indirect"`
}

func DefaultSettings() Settings {
	return Settings{
		Direct: map[models.DirectFeedback]FeedbackSetting{
			models.DirectCorrect: {Label: "Correct Answer", Score: 100},
			models.DirectTried:   {Label: "Tried but Failed", Score: 40},
			models.DirectWrong:   {Label: "Wrong Answer", Score: 0},
			models.DirectSilent:  {Label: "Silent / No Answer", Score: 0},
		},
		Indirect: map[models.IndirectFeedback]FeedbackSetting{
			models.IndirectExcellent: {Label: "Excellent", Score: 100},
			models.IndirectGood:      {Label: "Good", Score: 75},
			models.IndirectNotGood:   {Label: "Not Good", Score: 25},
			models.IndirectBad:       {Label: "Bad", Score: 0},
		},
	}
}

func (s Settings) Validate() error {
	for key := range s.Direct {
		if !key.IsValid() {
			return models.NewValidationError("неизвестная оценка %s для прямых вопросов", key)
		}
	}
	for key := range s.Indirect {
		if !key.IsValid() {
			return models.NewValidationError("неизвестная оценка %s для косвенных вопросов", key)
		}
	}
	for _, key := range models.DirectFeedbackOrder {
		item, ok := s.Direct[key]
		if !ok {
			return models.NewValidationError("не задана оценка %s для прямых вопросов", key)
		}
		if strings.TrimSpace(item.Label) == "" {
			return models.NewValidationError("не задана подпись оценки %s для прямых вопросов", key)
		}
	}
	for _, key := range models.IndirectFeedbackOrder {
		item, ok := s.Indirect[key]
		if !ok {
			return models.NewValidationError("не задана оценка %s для косвенных вопросов", key)
		}
		if strings.TrimSpace(item.Label) == "" {
			return models.NewValidationError("не задана подпись оценки %s для косвенных вопросов", key)
		}
	}
	return nil
}
