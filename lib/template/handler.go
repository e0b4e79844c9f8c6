package templatehandler

import (
	"time"

	"interview-scorer-backend/db"
	"interview-scorer-backend/lib/scoring"
	settingshandler "interview-scorer-backend/lib/settings"
	templatestore "interview-scorer-backend/lib/template/store"
	initchecker "interview-scorer-backend/lib/utils/init-checker"
	"interview-scorer-backend/models"
	templateapimodels "interview-scorer-backend/models/api/template"
	dbmodels "interview-scorer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(name string) (templateapimodels.TemplateView, error)
	Get(id string) (templateapimodels.TemplateView, error)
	List() ([]templateapimodels.TemplateView, error)
	Rename(id, name string) (templateapimodels.TemplateView, error)
	Delete(id string) error
	Duplicate(id string) (templateapimodels.TemplateView, error)
	Import(view templateapimodels.TemplateView) (templateapimodels.TemplateView, error)
	AddCategory(id, name string) (templateapimodels.TemplateView, error)
	RenameCategory(id, catID, name string) (templateapimodels.TemplateView, error)
	RemoveCategory(id, catID string) (templateapimodels.TemplateView, error)
	MoveCategory(id, catID, targetID string) (templateapimodels.TemplateView, error)
	AddQuestion(id, catID string) (templateapimodels.TemplateView, error)
	UpdateQuestion(id, qID string, patch templateapimodels.QuestionPatch) (templateapimodels.TemplateView, error)
	RemoveQuestion(id, qID string) (templateapimodels.TemplateView, error)
	MoveQuestion(id, qID string, direction templateapimodels.MoveDirection) (templateapimodels.TemplateView, error)
	AddCustomFeedback(id, qID string) (templateapimodels.TemplateView, error)
	UpdateCustomFeedback(id, qID, fID string, patch templateapimodels.CustomFeedbackPatch) (templateapimodels.TemplateView, error)
	RemoveCustomFeedback(id, qID, fID string) (templateapimodels.TemplateView, error)
	FeedbackOptions(id, qID string) ([]templateapimodels.FeedbackOption, error)
	SeedDemo() error
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, settingshandler.Instance)
}

func New(DB *gorm.DB, settingsProvider settingshandler.Provider) Provider {
	instance := impl{
		store:            templatestore.NewInstance(DB),
		settingsProvider: settingsProvider,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"settingsProvider", instance.settingsProvider,
	)
	return instance
}

type impl struct {
	store            templatestore.Provider
	settingsProvider settingshandler.Provider
}

func (i impl) Create(name string) (templateapimodels.TemplateView, error) {
	view := NewTemplate(name)
	id, err := i.store.Create(dbmodels.NewInterviewTemplate(view))
	if err != nil {
		log.WithError(err).Error("ошибка создания шаблона")
		return templateapimodels.TemplateView{}, err
	}
	log.
		WithField("template_id", id).
		WithField("template_name", view.Name).
		Info("создан шаблон интервью")
	return i.Get(id)
}

func (i impl) Get(id string) (templateapimodels.TemplateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return templateapimodels.TemplateView{}, err
	}
	if rec == nil {
		return templateapimodels.TemplateView{}, models.ErrTemplateNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) List() ([]templateapimodels.TemplateView, error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка шаблонов")
		return nil, err
	}
	result := make([]templateapimodels.TemplateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Rename(id, name string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		tpl.Name = name
		return nil
	})
}

// Delete удаляет только шаблон, результаты проведенных по нему интервью остаются
func (i impl) Delete(id string) error {
	logger := log.WithField("template_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrTemplateNotFound
	}
	if err = i.store.Delete(id); err != nil {
		logger.WithError(err).Error("ошибка удаления шаблона")
		return err
	}
	logger.Info("удален шаблон интервью")
	return nil
}

func (i impl) Duplicate(id string) (templateapimodels.TemplateView, error) {
	src, err := i.Get(id)
	if err != nil {
		return templateapimodels.TemplateView{}, err
	}
	copyView := Duplicate(src)
	newID, err := i.store.Create(dbmodels.NewInterviewTemplate(copyView))
	if err != nil {
		log.WithField("template_id", id).WithError(err).Error("ошибка копирования шаблона")
		return templateapimodels.TemplateView{}, err
	}
	log.
		WithField("template_id", id).
		WithField("copy_id", newID).
		Info("создана копия шаблона")
	return i.Get(newID)
}

func (i impl) Import(view templateapimodels.TemplateView) (templateapimodels.TemplateView, error) {
	if err := view.Validate(); err != nil {
		return templateapimodels.TemplateView{}, err
	}
	imported := WithFreshIDs(view)
	id, err := i.store.Create(dbmodels.NewInterviewTemplate(imported))
	if err != nil {
		log.WithError(err).Error("ошибка импорта шаблона")
		return templateapimodels.TemplateView{}, err
	}
	log.
		WithField("template_id", id).
		WithField("template_name", imported.Name).
		Info("шаблон импортирован")
	return i.Get(id)
}

func (i impl) AddCategory(id, name string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		_, err := AddCategory(tpl, name)
		return err
	})
}

func (i impl) RenameCategory(id, catID, name string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		return RenameCategory(tpl, catID, name)
	})
}

func (i impl) RemoveCategory(id, catID string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		return RemoveCategory(tpl, catID)
	})
}

func (i impl) MoveCategory(id, catID, targetID string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		MoveCategory(tpl, catID, targetID)
		return nil
	})
}

func (i impl) AddQuestion(id, catID string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		_, err := AddQuestion(tpl, catID)
		return err
	})
}

func (i impl) UpdateQuestion(id, qID string, patch templateapimodels.QuestionPatch) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		return UpdateQuestion(tpl, qID, patch)
	})
}

func (i impl) RemoveQuestion(id, qID string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		return RemoveQuestion(tpl, qID)
	})
}

func (i impl) MoveQuestion(id, qID string, direction templateapimodels.MoveDirection) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		return MoveQuestion(tpl, qID, direction)
	})
}

func (i impl) AddCustomFeedback(id, qID string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		_, err := AddCustomFeedback(tpl, qID)
		return err
	})
}

func (i impl) UpdateCustomFeedback(id, qID, fID string, patch templateapimodels.CustomFeedbackPatch) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		return UpdateCustomFeedback(tpl, qID, fID, patch)
	})
}

func (i impl) RemoveCustomFeedback(id, qID, fID string) (templateapimodels.TemplateView, error) {
	return i.mutate(id, func(tpl *templateapimodels.TemplateView) error {
		return RemoveCustomFeedback(tpl, qID, fID)
	})
}

func (i impl) FeedbackOptions(id, qID string) ([]templateapimodels.FeedbackOption, error) {
	tpl, err := i.Get(id)
	if err != nil {
		return nil, err
	}
	q, ok := tpl.FindQuestion(qID)
	if !ok {
		return nil, errors.Wrap(models.ErrQuestionNotFound, qID)
	}
	settings, err := i.settingsProvider.Get()
	if err != nil {
		return nil, err
	}
	return scoring.FeedbackOptions(q, settings), nil
}

// SeedDemo создает демонстрационный шаблон, если шаблонов еще нет
func (i impl) SeedDemo() error {
	count, err := i.store.Count()
	if err != nil {
		return err
	}
	if count != 0 {
		return nil
	}
	view := demoTemplate()
	if _, err = i.store.Create(dbmodels.NewInterviewTemplate(view)); err != nil {
		return errors.Wrap(err, "ошибка создания демонстрационного шаблона")
	}
	log.WithField("template_name", view.Name).Info("создан демонстрационный шаблон")
	return nil
}

func (i impl) mutate(id string, apply func(tpl *templateapimodels.TemplateView) error) (templateapimodels.TemplateView, error) {
	logger := log.WithField("template_id", id)
	tpl, err := i.Get(id)
	if err != nil {
		return templateapimodels.TemplateView{}, err
	}
	if err = apply(&tpl); err != nil {
		return templateapimodels.TemplateView{}, err
	}
	if err = tpl.Validate(); err != nil {
		return templateapimodels.TemplateView{}, err
	}
	if err = i.store.Save(dbmodels.NewInterviewTemplate(tpl)); err != nil {
		logger.WithError(err).Error("ошибка сохранения шаблона")
		return templateapimodels.TemplateView{}, err
	}
	return tpl, nil
}

func demoTemplate() templateapimodels.TemplateView {
	view := templateapimodels.TemplateView{
		Name:      "Full Stack Developer Internship",
		CreatedAt: time.Now(),
		Categories: []templateapimodels.Category{
			{ID: "cat-1", Name: "Soft Skills", Order: 0},
			{ID: "cat-2", Name: "Frontend", Order: 1},
			{ID: "cat-3", Name: "Backend", Order: 2},
		},
		Questions: []templateapimodels.Question{
			{ID: "q1", Text: "Explain the event loop in JavaScript.", Type: models.QuestionTypeDirect, Multiplier: 1.5, CategoryID: "cat-2", Order: 0},
			{ID: "q2", Text: "How do you handle state management in a large React app?", Type: models.QuestionTypeIndirect, Multiplier: 1.2, CategoryID: "cat-2", Order: 1},
			{ID: "q3", Text: "Difference between SQL and NoSQL?", Type: models.QuestionTypeDirect, Multiplier: 1.0, CategoryID: "cat-3", Order: 0},
		},
	}
	return WithFreshIDs(view)
}
