package resultstore

import (
	dbmodels "interview-scorer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.InterviewResult) (id string, err error)
	Save(rec dbmodels.InterviewResult) error
	GetByID(id string) (rec *dbmodels.InterviewResult, err error)
	List(filter dbmodels.ResultFilter) (list []dbmodels.InterviewResult, err error)
	Delete(id string) error
	DeleteAll() error
	ClearRun(runID string) error
	CountByRun() (map[string]int64, error)
	WithTx(tx *gorm.DB) Provider
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) WithTx(tx *gorm.DB) Provider {
	return &impl{db: tx}
}

func (i impl) Create(rec dbmodels.InterviewResult) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Save обновляет все поля записи, кроме даты создания
func (i impl) Save(rec dbmodels.InterviewResult) error {
	return i.db.
		Omit("created_at").
		Save(&rec).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.InterviewResult, error) {
	rec := dbmodels.InterviewResult{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.ResultFilter) (list []dbmodels.InterviewResult, err error) {
	list = []dbmodels.InterviewResult{}
	tx := i.db.
		Model(&dbmodels.InterviewResult{})
	if filter.RecruitmentRunID != "" {
		tx = tx.Where("recruitment_run_id = ?", filter.RecruitmentRunID)
	}
	err = tx.
		Order("date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.InterviewResult{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) DeleteAll() error {
	return i.db.
		Where("1 = 1").
		Delete(&dbmodels.InterviewResult{}).
		Error
}

// ClearRun отвязывает результаты от удаляемого набора
func (i impl) ClearRun(runID string) error {
	err := i.db.
		Model(&dbmodels.InterviewResult{}).
		Where("recruitment_run_id = ?", runID).
		Update("recruitment_run_id", nil).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка отвязки результатов от набора")
	}
	return nil
}

func (i impl) CountByRun() (map[string]int64, error) {
	type runCount struct {
		RecruitmentRunID string
		Cnt              int64
	}
	rows := []runCount{}
	err := i.db.
		Model(&dbmodels.InterviewResult{}).
		Select("recruitment_run_id, count(*) as cnt").
		Where("recruitment_run_id is not null").
		Group("recruitment_run_id").
		Scan(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета результатов по наборам")
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.RecruitmentRunID] = row.Cnt
	}
	return result, nil
}
