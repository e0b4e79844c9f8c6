package templatehandler

import (
	"sort"
	"strings"
	"time"

	"interview-scorer-backend/lib/utils/helpers"
	"interview-scorer-backend/models"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/pkg/errors"
)

const (
	defaultTemplateName   = "New Interview Template"
	defaultCategoryName   = "General"
	defaultQuestionText   = "New Question"
	defaultFeedbackLabel  = "New Feedback"
	defaultFeedbackScore  = 50.0
	duplicateNameSuffix   = " (Copy)"
	defaultQuestionWeight = 1.0
)

// NewTemplate пустой шаблон с одной категорией General
func NewTemplate(name string) templateapimodels.TemplateView {
	if strings.TrimSpace(name) == "" {
		name = defaultTemplateName
	}
	return templateapimodels.TemplateView{
		ID:        helpers.NewID(),
		Name:      name,
		CreatedAt: time.Now(),
		Categories: []templateapimodels.Category{
			{ID: helpers.NewID(), Name: defaultCategoryName, Order: 0},
		},
		Questions: []templateapimodels.Question{},
	}
}

// Duplicate копия шаблона с новыми идентификаторами шаблона, категорий, вопросов и вариантов оценки.
// Ссылки вопросов на категории переназначаются на новые категории.
func Duplicate(src templateapimodels.TemplateView) templateapimodels.TemplateView {
	catMap := make(map[string]string, len(src.Categories))
	result := templateapimodels.TemplateView{
		ID:         helpers.NewID(),
		Name:       src.Name + duplicateNameSuffix,
		CreatedAt:  time.Now(),
		Categories: make([]templateapimodels.Category, 0, len(src.Categories)),
		Questions:  make([]templateapimodels.Question, 0, len(src.Questions)),
	}
	for _, cat := range src.Categories {
		newID := helpers.NewID()
		catMap[cat.ID] = newID
		cat.ID = newID
		result.Categories = append(result.Categories, cat)
	}
	for _, q := range src.Questions {
		q = q.Copy()
		q.ID = helpers.NewID()
		q.CategoryID = catMap[q.CategoryID]
		feedbacks := make([]templateapimodels.CustomFeedback, 0, len(q.CustomFeedbacks))
		for _, f := range q.CustomFeedbacks {
			f.ID = helpers.NewID()
			feedbacks = append(feedbacks, f)
		}
		q.CustomFeedbacks = feedbacks
		result.Questions = append(result.Questions, q)
	}
	return result
}

// WithFreshIDs шаблон из файла обмена: новые идентификаторы с сохранением ссылок
func WithFreshIDs(src templateapimodels.TemplateView) templateapimodels.TemplateView {
	result := Duplicate(src)
	result.Name = src.Name
	if !src.CreatedAt.IsZero() {
		result.CreatedAt = src.CreatedAt
	}
	return result
}

func AddCategory(tpl *templateapimodels.TemplateView, name string) (templateapimodels.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return templateapimodels.Category{}, models.NewValidationError("не указано название категории")
	}
	cat := templateapimodels.Category{
		ID:    helpers.NewID(),
		Name:  name,
		Order: len(tpl.Categories),
	}
	tpl.Categories = append(tpl.Categories, cat)
	return cat, nil
}

func RenameCategory(tpl *templateapimodels.TemplateView, catID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NewValidationError("не указано название категории")
	}
	idx := categoryIndex(*tpl, catID)
	if idx < 0 {
		return errors.Wrap(models.ErrCategoryNotFound, catID)
	}
	tpl.Categories[idx].Name = name
	return nil
}

// RemoveCategory удаляет категорию вместе со всеми ее вопросами
func RemoveCategory(tpl *templateapimodels.TemplateView, catID string) error {
	idx := categoryIndex(*tpl, catID)
	if idx < 0 {
		return errors.Wrap(models.ErrCategoryNotFound, catID)
	}
	tpl.Categories = append(tpl.Categories[:idx:idx], tpl.Categories[idx+1:]...)
	questions := make([]templateapimodels.Question, 0, len(tpl.Questions))
	for _, q := range tpl.Questions {
		if q.CategoryID != catID {
			questions = append(questions, q)
		}
	}
	tpl.Questions = questions
	return nil
}

// MoveCategory ставит категорию sourceID на место targetID и перенумеровывает порядок.
// Неизвестные или совпадающие идентификаторы ничего не меняют.
func MoveCategory(tpl *templateapimodels.TemplateView, sourceID, targetID string) {
	if sourceID == targetID {
		return
	}
	sorted := append([]templateapimodels.Category(nil), tpl.Categories...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	sourceIdx, targetIdx := -1, -1
	for idx, cat := range sorted {
		switch cat.ID {
		case sourceID:
			sourceIdx = idx
		case targetID:
			targetIdx = idx
		}
	}
	if sourceIdx < 0 || targetIdx < 0 {
		return
	}
	moved := sorted[sourceIdx]
	sorted = append(sorted[:sourceIdx], sorted[sourceIdx+1:]...)
	sorted = append(sorted[:targetIdx], append([]templateapimodels.Category{moved}, sorted[targetIdx:]...)...)
	for idx := range sorted {
		sorted[idx].Order = idx
	}
	tpl.Categories = sorted
}

// AddQuestion новый прямой вопрос в конце категории
func AddQuestion(tpl *templateapimodels.TemplateView, catID string) (templateapimodels.Question, error) {
	if categoryIndex(*tpl, catID) < 0 {
		return templateapimodels.Question{}, errors.Wrap(models.ErrCategoryNotFound, catID)
	}
	q := templateapimodels.Question{
		ID:              helpers.NewID(),
		Text:            defaultQuestionText,
		Type:            models.QuestionTypeDirect,
		Multiplier:      defaultQuestionWeight,
		CategoryID:      catID,
		Order:           countInCategory(*tpl, catID),
		CustomFeedbacks: []templateapimodels.CustomFeedback{},
	}
	tpl.Questions = append(tpl.Questions, q)
	return q, nil
}

func UpdateQuestion(tpl *templateapimodels.TemplateView, qID string, patch templateapimodels.QuestionPatch) error {
	idx := questionIndex(*tpl, qID)
	if idx < 0 {
		return errors.Wrap(models.ErrQuestionNotFound, qID)
	}
	if err := patch.Validate(); err != nil {
		return models.NewValidationError("%s", err.Error())
	}
	q := &tpl.Questions[idx]
	if patch.Text != nil {
		q.Text = *patch.Text
	}
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Multiplier != nil {
		q.Multiplier = *patch.Multiplier
	}
	if patch.CategoryID != nil && *patch.CategoryID != q.CategoryID {
		if categoryIndex(*tpl, *patch.CategoryID) < 0 {
			return errors.Wrap(models.ErrCategoryNotFound, *patch.CategoryID)
		}
		q.Order = countInCategory(*tpl, *patch.CategoryID)
		q.CategoryID = *patch.CategoryID
	}
	return nil
}

func RemoveQuestion(tpl *templateapimodels.TemplateView, qID string) error {
	idx := questionIndex(*tpl, qID)
	if idx < 0 {
		return errors.Wrap(models.ErrQuestionNotFound, qID)
	}
	tpl.Questions = append(tpl.Questions[:idx:idx], tpl.Questions[idx+1:]...)
	return nil
}

// MoveQuestion меняет порядок вопроса с соседним в той же категории, на краях ничего не меняет
func MoveQuestion(tpl *templateapimodels.TemplateView, qID string, direction templateapimodels.MoveDirection) error {
	idx := questionIndex(*tpl, qID)
	if idx < 0 {
		return errors.Wrap(models.ErrQuestionNotFound, qID)
	}
	current := tpl.Questions[idx]
	siblings := make([]int, 0)
	for i, q := range tpl.Questions {
		if q.CategoryID == current.CategoryID {
			siblings = append(siblings, i)
		}
	}
	sort.SliceStable(siblings, func(i, j int) bool {
		return tpl.Questions[siblings[i]].Order < tpl.Questions[siblings[j]].Order
	})
	pos := -1
	for i, qIdx := range siblings {
		if qIdx == idx {
			pos = i
			break
		}
	}
	neighbour := -1
	switch direction {
	case templateapimodels.MoveUp:
		if pos > 0 {
			neighbour = siblings[pos-1]
		}
	case templateapimodels.MoveDown:
		if pos < len(siblings)-1 {
			neighbour = siblings[pos+1]
		}
	default:
		return models.NewValidationError("неизвестное направление перемещения: %s", direction)
	}
	if neighbour < 0 {
		return nil
	}
	tpl.Questions[idx].Order, tpl.Questions[neighbour].Order = tpl.Questions[neighbour].Order, tpl.Questions[idx].Order
	return nil
}

func AddCustomFeedback(tpl *templateapimodels.TemplateView, qID string) (templateapimodels.CustomFeedback, error) {
	idx := questionIndex(*tpl, qID)
	if idx < 0 {
		return templateapimodels.CustomFeedback{}, errors.Wrap(models.ErrQuestionNotFound, qID)
	}
	feedback := templateapimodels.CustomFeedback{
		ID:    helpers.NewID(),
		Label: defaultFeedbackLabel,
		Score: defaultFeedbackScore,
	}
	tpl.Questions[idx].CustomFeedbacks = append(tpl.Questions[idx].CustomFeedbacks, feedback)
	return feedback, nil
}

func UpdateCustomFeedback(tpl *templateapimodels.TemplateView, qID, fID string, patch templateapimodels.CustomFeedbackPatch) error {
	qIdx, fIdx, err := feedbackIndex(*tpl, qID, fID)
	if err != nil {
		return err
	}
	if err = patch.Validate(); err != nil {
		return models.NewValidationError("%s", err.Error())
	}
	feedback := &tpl.Questions[qIdx].CustomFeedbacks[fIdx]
	if patch.Label != nil {
		feedback.Label = strings.TrimSpace(*patch.Label)
	}
	if patch.Score != nil {
		feedback.Score = *patch.Score
	}
	return nil
}

func RemoveCustomFeedback(tpl *templateapimodels.TemplateView, qID, fID string) error {
	qIdx, fIdx, err := feedbackIndex(*tpl, qID, fID)
	if err != nil {
		return err
	}
	feedbacks := tpl.Questions[qIdx].CustomFeedbacks
	tpl.Questions[qIdx].CustomFeedbacks = append(feedbacks[:fIdx:fIdx], feedbacks[fIdx+1:]...)
	return nil
}

func categoryIndex(tpl templateapimodels.TemplateView, catID string) int {
	for idx, cat := range tpl.Categories {
		if cat.ID == catID {
			return idx
		}
	}
	return -1
}

func questionIndex(tpl templateapimodels.TemplateView, qID string) int {
	for idx, q := range tpl.Questions {
		if q.ID == qID {
			return idx
		}
	}
	return -1
}

func feedbackIndex(tpl templateapimodels.TemplateView, qID, fID string) (qIdx, fIdx int, err error) {
	qIdx = questionIndex(tpl, qID)
	if qIdx < 0 {
		return -1, -1, errors.Wrap(models.ErrQuestionNotFound, qID)
	}
	for idx, f := range tpl.Questions[qIdx].CustomFeedbacks {
		if f.ID == fID {
			return qIdx, idx, nil
		}
	}
	return -1, -1, errors.Wrap(models.ErrFeedbackNotFound, fID)
}

func countInCategory(tpl templateapimodels.TemplateView, catID string) int {
	count := 0
	for _, q := range tpl.Questions {
		if q.CategoryID == catID {
			count++
		}
	}
	return count
}
