package runhandler

import (
	"strings"
	"time"

	"interview-scorer-backend/db"
	resultstore "interview-scorer-backend/lib/result/store"
	runstore "interview-scorer-backend/lib/run/store"
	"interview-scorer-backend/lib/utils/helpers"
	initchecker "interview-scorer-backend/lib/utils/init-checker"
	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
	runapimodels "interview-scorer-backend/models/api/run"
	dbmodels "interview-scorer-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data runapimodels.RunData) (runapimodels.RunView, error)
	Get(id string) (runapimodels.RunWithCount, error)
	List() ([]runapimodels.RunWithCount, error)
	Update(id string, data runapimodels.RunData) (runapimodels.RunView, error)
	Delete(id string) error
	Calendar() ([]runapimodels.CalendarEvent, error)
	Export(id string) (runapimodels.Bundle, error)
	Import(bundle runapimodels.Bundle) (runapimodels.RunView, error)
	CompleteEnded(today time.Time) (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB)
}

func New(DB *gorm.DB) Provider {
	instance := impl{
		db:          DB,
		store:       runstore.NewInstance(DB),
		resultStore: resultstore.NewInstance(DB),
	}
	initchecker.CheckInit(
		"db", instance.db,
	)
	return instance
}

type impl struct {
	db          *gorm.DB
	store       runstore.Provider
	resultStore resultstore.Provider
}

func (i impl) Create(data runapimodels.RunData) (runapimodels.RunView, error) {
	if err := data.Validate(); err != nil {
		return runapimodels.RunView{}, err
	}
	view := runapimodels.RunView{
		ID:      helpers.NewID(),
		RunData: normalize(data),
	}
	if _, err := i.store.Create(dbmodels.NewRecruitmentRun(view)); err != nil {
		log.WithError(err).Error("ошибка создания набора")
		return runapimodels.RunView{}, err
	}
	log.
		WithField("run_id", view.ID).
		WithField("run_name", view.Name).
		Info("создан набор")
	return view, nil
}

func (i impl) Get(id string) (runapimodels.RunWithCount, error) {
	view, err := i.get(id)
	if err != nil {
		return runapimodels.RunWithCount{}, err
	}
	counts, err := i.resultStore.CountByRun()
	if err != nil {
		return runapimodels.RunWithCount{}, err
	}
	return runapimodels.RunWithCount{RunView: view, ResultCount: counts[id]}, nil
}

func (i impl) List() ([]runapimodels.RunWithCount, error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка наборов")
		return nil, err
	}
	counts, err := i.resultStore.CountByRun()
	if err != nil {
		return nil, err
	}
	result := make([]runapimodels.RunWithCount, 0, len(recList))
	for _, rec := range recList {
		result = append(result, runapimodels.RunWithCount{
			RunView:     rec.ToModel(),
			ResultCount: counts[rec.ID],
		})
	}
	return result, nil
}

func (i impl) Update(id string, data runapimodels.RunData) (runapimodels.RunView, error) {
	if err := data.Validate(); err != nil {
		return runapimodels.RunView{}, err
	}
	view, err := i.get(id)
	if err != nil {
		return runapimodels.RunView{}, err
	}
	view.RunData = normalize(data)
	if err = i.store.Save(dbmodels.NewRecruitmentRun(view)); err != nil {
		log.WithField("run_id", id).WithError(err).Error("ошибка обновления набора")
		return runapimodels.RunView{}, err
	}
	return view, nil
}

// Delete удаляет набор, результаты остаются без привязки к набору
func (i impl) Delete(id string) error {
	logger := log.WithField("run_id", id)
	if _, err := i.get(id); err != nil {
		return err
	}
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := i.resultStore.WithTx(tx).ClearRun(id); err != nil {
			return err
		}
		return i.store.WithTx(tx).Delete(id)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка удаления набора")
		return err
	}
	logger.Info("набор удален")
	return nil
}

func (i impl) Calendar() ([]runapimodels.CalendarEvent, error) {
	list, err := i.List()
	if err != nil {
		return nil, err
	}
	events := make([]runapimodels.CalendarEvent, 0, len(list))
	for _, run := range list {
		events = append(events, runapimodels.CalendarEvent{
			ID:          run.ID,
			Title:       run.Name,
			Start:       run.StartDate,
			End:         exclusiveEnd(run.EndDate),
			Status:      run.Status,
			ResultCount: run.ResultCount,
		})
	}
	return events, nil
}

func (i impl) Export(id string) (runapimodels.Bundle, error) {
	view, err := i.get(id)
	if err != nil {
		return runapimodels.Bundle{}, err
	}
	recList, err := i.resultStore.List(dbmodels.ResultFilter{RecruitmentRunID: id})
	if err != nil {
		return runapimodels.Bundle{}, err
	}
	bundle := runapimodels.Bundle{
		RunInfo: view,
		Results: make([]resultapimodels.ResultView, 0, len(recList)),
	}
	for _, rec := range recList {
		bundle.Results = append(bundle.Results, rec.ToModel())
	}
	return bundle, nil
}

// Import создает новый набор и копии результатов, привязанные к нему
func (i impl) Import(bundle runapimodels.Bundle) (runapimodels.RunView, error) {
	data := bundle.RunInfo.RunData
	if err := data.Validate(); err != nil {
		return runapimodels.RunView{}, err
	}
	for _, result := range bundle.Results {
		if strings.TrimSpace(result.CandidateName) == "" {
			return runapimodels.RunView{}, models.NewValidationError("не указано имя кандидата в результате набора")
		}
	}
	view := runapimodels.RunView{
		ID:      helpers.NewID(),
		RunData: normalize(data),
	}
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if _, err := i.store.WithTx(tx).Create(dbmodels.NewRecruitmentRun(view)); err != nil {
			return err
		}
		resultStore := i.resultStore.WithTx(tx)
		for _, result := range bundle.Results {
			result.ID = helpers.NewID()
			result.RecruitmentRunID = view.ID
			if result.Date.IsZero() {
				result.Date = time.Now()
			}
			if _, err := resultStore.Create(dbmodels.NewInterviewResult(result)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("ошибка импорта набора")
		return runapimodels.RunView{}, err
	}
	log.
		WithField("run_id", view.ID).
		WithField("results", len(bundle.Results)).
		Info("набор импортирован")
	return view, nil
}

// CompleteEnded завершает активные наборы, дата окончания которых раньше today
func (i impl) CompleteEnded(today time.Time) (int64, error) {
	return i.store.CompleteEndedBefore(today.Format(models.DateLayout))
}

func (i impl) get(id string) (runapimodels.RunView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return runapimodels.RunView{}, err
	}
	if rec == nil {
		return runapimodels.RunView{}, models.ErrRunNotFound
	}
	return rec.ToModel(), nil
}

func normalize(data runapimodels.RunData) runapimodels.RunData {
	data.Name = strings.TrimSpace(data.Name)
	data.Description = strings.TrimSpace(data.Description)
	if data.Status == "" {
		data.Status = models.RunStatusActive
	}
	return data
}

// exclusiveEnd конец события календаря: день после даты окончания
func exclusiveEnd(endDate string) string {
	if endDate == "" {
		return ""
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return ""
	}
	return end.AddDate(0, 0, 1).Format(models.DateLayout)
}
