package resultapimodels

import (
	"strings"
	"time"

	"interview-scorer-backend/models"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AnswerData struct {
	Feedback string  `json:"feedback" yaml:"feedback"` // подпись выбранной оценки
	Score    float64 `json:"score" yaml:"score"`       // балл с учетом множителя
	Note     string  `json:"note,omitempty" yaml:"note,omitempty"`
	IsCustom bool    `json:"isCustom,omitempty" yaml:"isCustom,omitempty"`
}

type QuestionResult struct {
	templateapimodels.Question `yaml:",inline"`
	Answer                     *AnswerData `json:"answer,omitempty" yaml:"answer,omitempty"`
}

// ResultView проведенное интервью. Категории и вопросы - копия шаблона на момент сохранения
type ResultView struct {
	ID               string                       `json:"id" yaml:"id"`
	RecruitmentRunID string                       `json:"recruitmentRunId,omitempty" yaml:"recruitmentRunId,omitempty"`
	TemplateName     string                       `json:"templateName" yaml:"templateName"`
	CandidateName    string                       `json:"candidateName" yaml:"candidateName"`
	Date             time.Time                    `json:"date" yaml:"date"`
	CompletedAt      *time.Time                   `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Categories       []templateapimodels.Category `json:"categories" yaml:"categories"`
	Questions        []QuestionResult             `json:"questions" yaml:"questions"`
	TotalScore       float64                      `json:"totalScore" yaml:"totalScore"`
	MaxPossibleScore float64                      `json:"maxPossibleScore" yaml:"maxPossibleScore"`
	Summary          string                       `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Percentage итоговый результат в процентах
func (r ResultView) Percentage() float64 {
	if r.MaxPossibleScore <= 0 {
		return 0
	}
	return r.TotalScore / r.MaxPossibleScore * 100
}

func (r ResultView) CategoryName(id string) string {
	for _, cat := range r.Categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return ""
}

// Template шаблон, восстановленный из копии в результате
func (r ResultView) Template() templateapimodels.TemplateView {
	questions := make([]templateapimodels.Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		questions = append(questions, q.Question.Copy())
	}
	return templateapimodels.TemplateView{
		ID:         "snapshot",
		Name:       r.TemplateName,
		CreatedAt:  r.Date,
		Categories: append([]templateapimodels.Category(nil), r.Categories...),
		Questions:  questions,
	}
}

// Answers ответы результата по идентификатору вопроса
func (r ResultView) Answers() map[string]AnswerData {
	answers := make(map[string]AnswerData, len(r.Questions))
	for _, q := range r.Questions {
		if q.Answer != nil {
			answers[q.ID] = *q.Answer
		}
	}
	return answers
}

type ResultDetails struct {
	ResultView
	Score          ScoreStats      `json:"score"`
	CategoryScores []CategoryScore `json:"categoryScores"`
	Series         []QuestionPoint `json:"questionSeries"`
}

type ScoreStats struct {
	Total      float64 `json:"total"`
	Max        float64 `json:"max"`
	Percentage float64 `json:"percentage"`
}

type CategoryScore struct {
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Max         float64 `json:"max"`
	Percentage  float64 `json:"percentage"`
	Proficiency int     `json:"proficiency"` // округленный процент, как на радарной диаграмме
	Answered    int     `json:"answered"`
	Questions   int     `json:"questions"`
}

type QuestionPoint struct {
	Name       string  `json:"name"` // Q1..Qn
	QuestionID string  `json:"questionId"`
	ShortText  string  `json:"shortText"`
	Score      float64 `json:"score"`
	Missed     float64 `json:"missed"`
	Max        float64 `json:"max"`
}

type AnswerRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
	Feedback   string `json:"feedback" validate:"required"` // ключ глобальной шкалы (CORRECT...) или подпись
	IsCustom   bool   `json:"isCustom"`
	Note       string `json:"note"`
}

type SaveRequest struct {
	TemplateID       string          `json:"templateId" validate:"required"`
	CandidateName    string          `json:"candidateName"`
	Summary          string          `json:"summary"`
	RecruitmentRunID string          `json:"recruitmentRunId"`
	StartedAt        *time.Time      `json:"startedAt"`
	Answers          []AnswerRequest `json:"answers" validate:"dive"`
}

func (r SaveRequest) Validate() error {
	if strings.TrimSpace(r.CandidateName) == "" {
		return models.NewValidationError("не указано имя кандидата")
	}
	if err := validate.Struct(r); err != nil {
		return models.NewValidationError("некорректные данные интервью: %s", err.Error())
	}
	seen := map[string]struct{}{}
	for _, answer := range r.Answers {
		if _, dup := seen[answer.QuestionID]; dup {
			return models.NewValidationError("ответ на вопрос %s указан дважды", answer.QuestionID)
		}
		seen[answer.QuestionID] = struct{}{}
	}
	return nil
}

// UpdateRequest меняет только резюме и привязку к набору, снимок шаблона неизменяем
type UpdateRequest struct {
	Summary          *string `json:"summary"`
	RecruitmentRunID *string `json:"recruitmentRunId"`
}

func (r UpdateRequest) Validate() error {
	if r.Summary == nil && r.RecruitmentRunID == nil {
		return models.NewValidationError("нет данных для обновления")
	}
	return nil
}

type ShareRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r ShareRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return models.NewValidationError("некорректный адрес почты")
	}
	return nil
}

type ListFilter struct {
	RecruitmentRunID string `query:"run_id"`
}
