package runstore

import (
	"interview-scorer-backend/models"
	dbmodels "interview-scorer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.RecruitmentRun) (id string, err error)
	Save(rec dbmodels.RecruitmentRun) error
	GetByID(id string) (rec *dbmodels.RecruitmentRun, err error)
	List() (list []dbmodels.RecruitmentRun, err error)
	Delete(id string) error
	DeleteAll() error
	CompleteEndedBefore(date string) (int64, error)
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

func (i impl) Create(rec dbmodels.RecruitmentRun) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Save обновляет все поля записи, кроме даты создания
func (i impl) Save(rec dbmodels.RecruitmentRun) error {
	return i.db.
		Omit("created_at").
		Save(&rec).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.RecruitmentRun, error) {
	rec := dbmodels.RecruitmentRun{}
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

func (i impl) List() (list []dbmodels.RecruitmentRun, err error) {
	list = []dbmodels.RecruitmentRun{}
	err = i.db.
		Model(&dbmodels.RecruitmentRun{}).
		Order("start_date desc").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.RecruitmentRun{
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
		Delete(&dbmodels.RecruitmentRun{}).
		Error
}

// CompleteEndedBefore переводит в COMPLETED активные наборы с датой окончания раньше date (YYYY-MM-DD)
func (i impl) CompleteEndedBefore(date string) (int64, error) {
	tx := i.db.
		Model(&dbmodels.RecruitmentRun{}).
		Where("status = ?", models.RunStatusActive).
		Where("end_date <> ''").
		Where("end_date < ?", date).
		Update("status", models.RunStatusCompleted)
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "ошибка завершения наборов")
	}
	return tx.RowsAffected, nil
}
