package xlsexport

import (
	"bytes"

	statisticsapimodels "interview-scorer-backend/models/api/statistics"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportStatistics(dashboard statisticsapimodels.Dashboard) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	leaderboardSheet = "Leaderboard"
	heatmapSheet     = "Heatmap"
	histogramSheet   = "Distribution"
)

var leaderboardHeaders = []string{"#", "Candidate", "Score, %", "Raw score", "Max score", "Date"}

var histogramHeaders = []string{"Range", "Candidates"}

func (i impl) ExportStatistics(dashboard statisticsapimodels.Dashboard) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	f.SetSheetName("Sheet1", leaderboardSheet)
	row, err := writeHeader(f, leaderboardSheet, 0, leaderboardHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(dashboard.Leaderboard) != 0 {
		if _, err = writeLeaderboardData(f, leaderboardSheet, dashboard.Leaderboard, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования рейтинга в xlsx")
		}
	}

	if _, err = f.NewSheet(heatmapSheet); err != nil {
		return nil, err
	}
	if err = writeHeatmap(f, heatmapSheet, dashboard.Heatmap); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования тепловой карты в xlsx")
	}

	if _, err = f.NewSheet(histogramSheet); err != nil {
		return nil, err
	}
	row, err = writeHeader(f, histogramSheet, 0, histogramHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	for _, bin := range dashboard.Histogram {
		row++
		if err = writeColumn(f, histogramSheet, 1, row, bin.Range); err != nil {
			return nil, err
		}
		if err = writeColumn(f, histogramSheet, 2, row, bin.Count); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

func writeLeaderboardData(f *excelize.File, sheet string, list []statisticsapimodels.LeaderboardEntry, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(leaderboardHeaders), row+len(list)); err != nil {
		return row, err
	}
	for idx, item := range list {
		row++
		values := []interface{}{idx + 1, item.Name, round1(item.Score), round1(item.RawScore), round1(item.MaxScore), item.Date}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

// writeHeatmap строка на кандидата, колонка на категорию; пустая ячейка - категории не было в интервью
func writeHeatmap(f *excelize.File, sheet string, heatmap statisticsapimodels.Heatmap) error {
	headers := append([]string{"Candidate"}, heatmap.Categories...)
	row, err := writeHeader(f, sheet, 0, headers)
	if err != nil {
		return err
	}
	if len(heatmap.Rows) == 0 {
		return nil
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+len(heatmap.Rows)); err != nil {
		return err
	}
	for _, item := range heatmap.Rows {
		row++
		if err = writeColumn(f, sheet, 1, row, item.Candidate); err != nil {
			return err
		}
		for idx, cell := range item.Scores {
			if cell.Value == nil {
				continue
			}
			if err = writeColumn(f, sheet, idx+2, row, round1(*cell.Value)); err != nil {
				return err
			}
		}
	}
	return nil
}
