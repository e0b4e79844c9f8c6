package dbmodels

import (
	"database/sql/driver"

	"interview-scorer-backend/models"
	settingsapimodels "interview-scorer-backend/models/api/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GlobalSettingsID настройки хранятся одной записью
const GlobalSettingsID = "global"

type AppSettings struct {
	BaseModel
	Direct   DirectScale   `gorm:"not null"`
	Indirect IndirectScale `gorm:"not null"`
}

type DirectScale map[models.DirectFeedback]settingsapimodels.FeedbackSetting

func (j DirectScale) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *DirectScale) Scan(value interface{}) error {
	return jsonScan(value, j)
}

func (DirectScale) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBType(db)
}

type IndirectScale map[models.IndirectFeedback]settingsapimodels.FeedbackSetting

func (j IndirectScale) Value() (driver.Value, error) {
	return jsonValue(j)
}

func (j *IndirectScale) Scan(value interface{}) error {
	return jsonScan(value, j)
}

func (IndirectScale) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBType(db)
}

func (r AppSettings) ToModel() settingsapimodels.Settings {
	return settingsapimodels.Settings{
		Direct:   r.Direct,
		Indirect: r.Indirect,
	}
}

func NewAppSettings(settings settingsapimodels.Settings) AppSettings {
	return AppSettings{
		BaseModel: BaseModel{
			ID: GlobalSettingsID,
		},
		Direct:   settings.Direct,
		Indirect: settings.Indirect,
	}
}
