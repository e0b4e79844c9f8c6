package settingshandler

import (
	"interview-scorer-backend/db"
	settingsstore "interview-scorer-backend/lib/settings/store"
	initchecker "interview-scorer-backend/lib/utils/init-checker"
	"interview-scorer-backend/models"
	settingsapimodels "interview-scorer-backend/models/api/settings"
	dbmodels "interview-scorer-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Get() (settingsapimodels.Settings, error)
	Save(settings settingsapimodels.Settings) (settingsapimodels.Settings, error)
	Reset() (settingsapimodels.Settings, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB)
}

func New(DB *gorm.DB) Provider {
	instance := impl{
		store: settingsstore.NewInstance(DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store settingsstore.Provider
}

// Get сохраненная шкала оценок, пока настройки не сохранялись - шкала по умолчанию
func (i impl) Get() (settingsapimodels.Settings, error) {
	rec, err := i.store.Get()
	if err != nil {
		log.WithError(err).Error("ошибка получения настроек")
		return settingsapimodels.Settings{}, err
	}
	if rec == nil {
		return settingsapimodels.DefaultSettings(), nil
	}
	return withDefaults(rec.ToModel()), nil
}

func (i impl) Save(settings settingsapimodels.Settings) (settingsapimodels.Settings, error) {
	if err := settings.Validate(); err != nil {
		return settingsapimodels.Settings{}, err
	}
	if err := i.store.Save(dbmodels.NewAppSettings(settings)); err != nil {
		log.WithError(err).Error("ошибка сохранения настроек")
		return settingsapimodels.Settings{}, err
	}
	log.Info("шкала оценок обновлена")
	return settings, nil
}

func (i impl) Reset() (settingsapimodels.Settings, error) {
	if err := i.store.Delete(); err != nil {
		log.WithError(err).Error("ошибка сброса настроек")
		return settingsapimodels.Settings{}, err
	}
	log.Info("шкала оценок сброшена к значениям по умолчанию")
	return settingsapimodels.DefaultSettings(), nil
}

// withDefaults дополняет отсутствующие ключи значениями по умолчанию
func withDefaults(settings settingsapimodels.Settings) settingsapimodels.Settings {
	defaults := settingsapimodels.DefaultSettings()
	if settings.Direct == nil {
		settings.Direct = map[models.DirectFeedback]settingsapimodels.FeedbackSetting{}
	}
	if settings.Indirect == nil {
		settings.Indirect = map[models.IndirectFeedback]settingsapimodels.FeedbackSetting{}
	}
	for key, item := range defaults.Direct {
		if _, ok := settings.Direct[key]; !ok {
			settings.Direct[key] = item
		}
	}
	for key, item := range defaults.Indirect {
		if _, ok := settings.Indirect[key]; !ok {
			settings.Indirect[key] = item
		}
	}
	return settings
}
