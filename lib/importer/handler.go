package importhandler

import (
	backuphandler "interview-scorer-backend/lib/backup"
	"interview-scorer-backend/lib/interchange"
	resulthandler "interview-scorer-backend/lib/result"
	runhandler "interview-scorer-backend/lib/run"
	settingshandler "interview-scorer-backend/lib/settings"
	templatehandler "interview-scorer-backend/lib/template"
	initchecker "interview-scorer-backend/lib/utils/init-checker"
	apimodels "interview-scorer-backend/models/api"

	log "github.com/sirupsen/logrus"
)

// Provider загрузка файла обмена любого вида: шаблон, результат, настройки, набор или резервная копия
type Provider interface {
	Import(data []byte) (apimodels.ImportView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(
		templatehandler.Instance,
		resulthandler.Instance,
		settingshandler.Instance,
		runhandler.Instance,
		backuphandler.Instance,
	)
}

func New(templates templatehandler.Provider, results resulthandler.Provider, settings settingshandler.Provider,
	runs runhandler.Provider, backup backuphandler.Provider) Provider {
	instance := impl{
		templates: templates,
		results:   results,
		settings:  settings,
		runs:      runs,
		backup:    backup,
	}
	initchecker.CheckInit(
		"templates", instance.templates,
		"results", instance.results,
		"settings", instance.settings,
		"runs", instance.runs,
		"backup", instance.backup,
	)
	return instance
}

type impl struct {
	templates templatehandler.Provider
	results   resulthandler.Provider
	settings  settingshandler.Provider
	runs      runhandler.Provider
	backup    backuphandler.Provider
}

func (i impl) Import(data []byte) (apimodels.ImportView, error) {
	doc, err := interchange.Load(data)
	if err != nil {
		log.WithError(err).Warn("файл обмена не распознан")
		return apimodels.ImportView{}, err
	}
	view := apimodels.ImportView{Kind: string(doc.Kind)}
	switch doc.Kind {
	case interchange.KindTemplate:
		tpl, err := i.templates.Import(*doc.Template)
		if err != nil {
			return apimodels.ImportView{}, err
		}
		view.ID = tpl.ID
	case interchange.KindResult:
		result, err := i.results.Import(*doc.Result)
		if err != nil {
			return apimodels.ImportView{}, err
		}
		view.ID = result.ID
	case interchange.KindSettings:
		if _, err = i.settings.Save(*doc.Settings); err != nil {
			return apimodels.ImportView{}, err
		}
	case interchange.KindRun:
		run, err := i.runs.Import(*doc.Run)
		if err != nil {
			return apimodels.ImportView{}, err
		}
		view.ID = run.ID
	case interchange.KindBackup:
		if _, err = i.backup.Restore(*doc.Backup); err != nil {
			return apimodels.ImportView{}, err
		}
	}
	log.
		WithField("kind", view.Kind).
		WithField("id", view.ID).
		Info("файл обмена загружен")
	return view, nil
}
