package templateapimodels

import (
	"strings"
	"time"

	"interview-scorer-backend/models"

	"github.com/pkg/errors"
)

// TemplateView шаблон интервью, он же формат файла обмена
type TemplateView struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	CreatedAt  time.Time  `json:"createdAt" yaml:"createdAt"`
	Categories []Category `json:"categories" yaml:"categories"`
	Questions  []Question `json:"questions" yaml:"questions"`
}

type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Order int    `json:"order" yaml:"order"`
}

type Question struct {
	ID              string              `json:"id" yaml:"id"`
	Text            string              `json:"text" yaml:"text"`
	Type            models.QuestionType `json:"type" yaml:"type"`
	Multiplier      float64             `json:"multiplier" yaml:"multiplier"`
	CategoryID      string              `json:"categoryId" yaml:"categoryId"`
	Order           int                 `json:"order" yaml:"order"`
	CustomFeedbacks []CustomFeedback    `json:"customFeedbacks,omitempty" yaml:"customFeedbacks,omitempty"`
}

// CustomFeedback дополнительный вариант оценки вопроса сверх глобальной шкалы
type CustomFeedback struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Score float64 `json:"score" yaml:"score"`
}

func (t TemplateView) FindCategory(id string) (Category, bool) {
	for _, cat := range t.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

func (t TemplateView) FindQuestion(id string) (Question, bool) {
	for _, q := range t.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Validate проверяет целостность шаблона: каждый вопрос ссылается на категорию этого же шаблона
func (t TemplateView) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return models.NewValidationError("не указано название шаблона")
	}
	catIDs := make(map[string]struct{}, len(t.Categories))
	for _, cat := range t.Categories {
		if cat.ID == "" {
			return models.NewValidationError("не указан идентификатор категории %q", cat.Name)
		}
		if _, dup := catIDs[cat.ID]; dup {
			return models.NewValidationError("категория %s указана дважды", cat.ID)
		}
		catIDs[cat.ID] = struct{}{}
	}
	for _, q := range t.Questions {
		if _, ok := catIDs[q.CategoryID]; !ok {
			return models.NewValidationError("вопрос %q ссылается на несуществующую категорию %s", q.Text, q.CategoryID)
		}
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (q Question) Validate() error {
	if !q.Type.IsValid() {
		return models.NewValidationError("неизвестный тип вопроса: %s", q.Type)
	}
	if q.Multiplier <= 0 {
		return models.NewValidationError("множитель вопроса должен быть больше нуля")
	}
	return nil
}

// Copy глубокая копия шаблона
func (t TemplateView) Copy() TemplateView {
	result := t
	result.Categories = append([]Category(nil), t.Categories...)
	result.Questions = make([]Question, 0, len(t.Questions))
	for _, q := range t.Questions {
		result.Questions = append(result.Questions, q.Copy())
	}
	return result
}

func (q Question) Copy() Question {
	result := q
	if q.CustomFeedbacks != nil {
		result.CustomFeedbacks = append([]CustomFeedback{}, q.CustomFeedbacks...)
	}
	return result
}

type TemplateData struct {
	Name string `json:"name"`
}

func (r TemplateData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название шаблона")
	}
	return nil
}

type CategoryData struct {
	Name string `json:"name"`
}

func (r CategoryData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название категории")
	}
	return nil
}

// CategoryMove перенос категории на место целевой
type CategoryMove struct {
	TargetID string `json:"targetId"`
}

func (r CategoryMove) Validate() error {
	if strings.TrimSpace(r.TargetID) == "" {
		return errors.New("не указана целевая категория")
	}
	return nil
}

// QuestionPatch частичное обновление вопроса, nil поля не меняются
type QuestionPatch struct {
	Text       *string              `json:"text"`
	Type       *models.QuestionType `json:"type"`
	Multiplier *float64             `json:"multiplier"`
	CategoryID *string              `json:"categoryId"`
}

func (r QuestionPatch) Validate() error {
	if r.Type != nil && !r.Type.IsValid() {
		return errors.Errorf("неизвестный тип вопроса: %s", *r.Type)
	}
	if r.Multiplier != nil && *r.Multiplier <= 0 {
		return errors.New("множитель вопроса должен быть больше нуля")
	}
	return nil
}

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

type QuestionMove struct {
	Direction MoveDirection `json:"direction"`
}

func (r QuestionMove) Validate() error {
	if r.Direction != MoveUp && r.Direction != MoveDown {
		return errors.New("направление перемещения должно быть up или down")
	}
	return nil
}

type CustomFeedbackPatch struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

func (r CustomFeedbackPatch) Validate() error {
	if r.Label != nil && strings.TrimSpace(*r.Label) == "" {
		return errors.New("не указана подпись варианта оценки")
	}
	return nil
}

// FeedbackOption вариант оценки, доступный при проведении интервью
type FeedbackOption struct {
	Key      string  `json:"key,omitempty"` // ключ глобальной шкалы, пусто для пользовательских вариантов
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
	IsCustom bool    `json:"isCustom"`
}
