package settingsstore

import (
	dbmodels "interview-scorer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Get() (rec *dbmodels.AppSettings, err error)
	Save(rec dbmodels.AppSettings) error
	Delete() error
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

func (i impl) Get() (*dbmodels.AppSettings, error) {
	rec := dbmodels.AppSettings{}
	err := i.db.
		Where("id = ?", dbmodels.GlobalSettingsID).
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

func (i impl) Save(rec dbmodels.AppSettings) error {
	rec.ID = dbmodels.GlobalSettingsID
	return i.db.
		Save(&rec).
		Error
}

func (i impl) Delete() error {
	return i.db.
		Where("id = ?", dbmodels.GlobalSettingsID).
		Delete(&dbmodels.AppSettings{}).
		Error
}
