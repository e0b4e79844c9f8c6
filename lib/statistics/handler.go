package statisticshandler

import (
	"bytes"

	xlsexport "interview-scorer-backend/lib/export/xls"
	resulthandler "interview-scorer-backend/lib/result"
	initchecker "interview-scorer-backend/lib/utils/init-checker"
	resultapimodels "interview-scorer-backend/models/api/result"
	statisticsapimodels "interview-scorer-backend/models/api/statistics"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Dashboard(filter statisticsapimodels.Filter) (statisticsapimodels.Dashboard, error)
	Export(filter statisticsapimodels.Filter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(resulthandler.Instance, xlsexport.Instance)
}

func New(resultProvider resulthandler.Provider, exporter xlsexport.Provider) Provider {
	instance := impl{
		resultProvider: resultProvider,
		exporter:       exporter,
	}
	initchecker.CheckInit(
		"resultProvider", instance.resultProvider,
		"exporter", instance.exporter,
	)
	return instance
}

type impl struct {
	resultProvider resulthandler.Provider
	exporter       xlsexport.Provider
}

func (i impl) Dashboard(filter statisticsapimodels.Filter) (statisticsapimodels.Dashboard, error) {
	results, err := i.resultProvider.List(resultapimodels.ListFilter{RecruitmentRunID: filter.RecruitmentRunID})
	if err != nil {
		return statisticsapimodels.Dashboard{}, err
	}
	return Build(results), nil
}

func (i impl) Export(filter statisticsapimodels.Filter) (*bytes.Buffer, error) {
	dashboard, err := i.Dashboard(filter)
	if err != nil {
		return nil, err
	}
	buf, err := i.exporter.ExportStatistics(dashboard)
	if err != nil {
		log.
			WithField("run_id", filter.RecruitmentRunID).
			WithError(err).
			Error("ошибка выгрузки статистики в xlsx")
		return nil, err
	}
	return buf, nil
}
