package backupapimodels

import (
	"time"

	resultapimodels "interview-scorer-backend/models/api/result"
	runapimodels "interview-scorer-backend/models/api/run"
	settingsapimodels "interview-scorer-backend/models/api/settings"
	templateapimodels "interview-scorer-backend/models/api/template"
)

// Bundle полное состояние: шаблоны, результаты, настройки, наборы
type Bundle struct {
	Templates []templateapimodels.TemplateView `json:"templates" yaml:"templates"`
	Results   []resultapimodels.ResultView     `json:"results" yaml:"results"`
	Settings  settingsapimodels.Settings       `json:"settings" yaml:"settings"`
	Runs      []runapimodels.RunView           `json:"runs" yaml:"runs"`
}

type ObjectView struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

type RestoreSummary struct {
	Templates int `json:"templates"`
	Results   int `json:"results"`
	Runs      int `json:"runs"`
}
