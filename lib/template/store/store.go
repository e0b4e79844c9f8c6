package templatestore

import (
	dbmodels "interview-scorer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.InterviewTemplate) (id string, err error)
	Save(rec dbmodels.InterviewTemplate) error
	GetByID(id string) (rec *dbmodels.InterviewTemplate, err error)
	List() (list []dbmodels.InterviewTemplate, err error)
	Delete(id string) error
	DeleteAll() error
	Count() (int64, error)
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

func (i impl) Create(rec dbmodels.InterviewTemplate) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Save обновляет все поля записи, кроме даты создания
func (i impl) Save(rec dbmodels.InterviewTemplate) error {
	return i.db.
		Omit("created_at").
		Save(&rec).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.InterviewTemplate, error) {
	rec := dbmodels.InterviewTemplate{}
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

func (i impl) List() (list []dbmodels.InterviewTemplate, err error) {
	list = []dbmodels.InterviewTemplate{}
	err = i.db.
		Model(&dbmodels.InterviewTemplate{}).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.InterviewTemplate{
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
		Delete(&dbmodels.InterviewTemplate{}).
		Error
}

func (i impl) Count() (rowCount int64, err error) {
	err = i.db.
		Model(&dbmodels.InterviewTemplate{}).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчета шаблонов")
	}
	return rowCount, nil
}
