package runapimodels

import (
	"strings"
	"time"

	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
)

type RunData struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   string           `json:"startDate" yaml:"startDate"`                 // YYYY-MM-DD
	EndDate     string           `json:"endDate,omitempty" yaml:"endDate,omitempty"` // YYYY-MM-DD, включительно
	Status      models.RunStatus `json:"status" yaml:"status"`
}

// RunView набор интервью (recruitment run)
type RunView struct {
	ID      string `json:"id" yaml:"id"`
	RunData `yaml:",inline"`
}

type RunWithCount struct {
	RunView
	ResultCount int64 `json:"resultCount"`
}

func (r *RunData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("не указано название набора")
	}
	if r.Status == "" {
		r.Status = models.RunStatusActive
	}
	if !r.Status.IsValid() {
		return models.NewValidationError("неизвестный статус набора: %s", r.Status)
	}
	start, err := time.Parse(models.DateLayout, r.StartDate)
	if err != nil {
		return models.NewValidationError("дата начала набора должна быть в формате ГГГГ-ММ-ДД")
	}
	if r.EndDate != "" {
		end, err := time.Parse(models.DateLayout, r.EndDate)
		if err != nil {
			return models.NewValidationError("дата окончания набора должна быть в формате ГГГГ-ММ-ДД")
		}
		if end.Before(start) {
			return models.NewValidationError("дата окончания набора раньше даты начала")
		}
	}
	return nil
}

// Bundle выгрузка набора вместе с результатами
type Bundle struct {
	RunInfo RunView                      `json:"runInfo" yaml:"runInfo"`
	Results []resultapimodels.ResultView `json:"results" yaml:"results"`
}

// CalendarEvent набор на календаре. End исключающая граница, как принято у календарных виджетов
type CalendarEvent struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Start       string           `json:"start"`
	End         string           `json:"end,omitempty"`
	Status      models.RunStatus `json:"status"`
	ResultCount int64            `json:"resultCount"`
}
