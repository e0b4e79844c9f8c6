package statisticshandler

import (
	"testing"
	"time"

	xlsexport "interview-scorer-backend/lib/export/xls"
	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func question(id, catID string, multiplier float64, score *float64) resultapimodels.QuestionResult {
	q := resultapimodels.QuestionResult{
		Question: templateapimodels.Question{ID: id, Text: id, Type: models.QuestionTypeDirect, Multiplier: multiplier, CategoryID: catID},
	}
	if score != nil {
		q.Answer = &resultapimodels.AnswerData{Feedback: "x", Score: *score}
	}
	return q
}

func score(v float64) *float64 {
	return &v
}

func sampleResults() []resultapimodels.ResultView {
	return []resultapimodels.ResultView{
		{
			ID:            "r1",
			CandidateName: "Jane",
			Date:          time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Categories: []templateapimodels.Category{
				{ID: "a", Name: "Go", Order: 0},
				{ID: "b", Name: "SQL", Order: 1},
			},
			Questions: []resultapimodels.QuestionResult{
				question("q1", "a", 1, score(100)),
				question("q2", "b", 1, score(50)),
			},
			TotalScore:       150,
			MaxPossibleScore: 200,
		},
		{
			ID:            "r2",
			CandidateName: "John",
			Date:          time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
			Categories: []templateapimodels.Category{
				{ID: "x", Name: "Go", Order: 0},
			},
			Questions: []resultapimodels.QuestionResult{
				question("q1", "x", 2, score(190)),
				question("q2", "gone", 1, nil),
			},
			TotalScore:       190,
			MaxPossibleScore: 300,
		},
		{
			ID:               "r3",
			CandidateName:    "Ann",
			Date:             time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC),
			Categories:       []templateapimodels.Category{{ID: "c", Name: "Soft", Order: 0}},
			Questions:        []resultapimodels.QuestionResult{question("q1", "c", 1, score(100))},
			TotalScore:       100,
			MaxPossibleScore: 100,
		},
	}
}

func TestLeaderboard(t *testing.T) {
	list := Leaderboard(sampleResults())
	require.Len(t, list, 3)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, 100.0, list[0].Score)
	assert.Equal(t, "Jane", list[1].Name)
	assert.Equal(t, 75.0, list[1].Score)
	assert.Equal(t, "2024-03-01", list[1].Date)
}

func TestDistribution(t *testing.T) {
	points := Distribution(sampleResults())
	require.Len(t, points, 5)
	assert.Equal(t, "Go", points[0].Category)
	assert.Equal(t, 100.0, points[0].Score)
	assert.Equal(t, "SQL", points[1].Category)
	assert.Equal(t, 50.0, points[1].Score)
	assert.Equal(t, "Go", points[2].Category)
	assert.Equal(t, 95.0, points[2].Score)
	assert.Equal(t, "Unknown", points[3].Category)
	assert.Equal(t, 0.0, points[3].Score)
	assert.Equal(t, "John", points[3].Candidate)
}

func TestHeatmap(t *testing.T) {
	heatmap := Heatmap(sampleResults())
	assert.Equal(t, []string{"Go", "SQL", "Soft"}, heatmap.Categories)
	require.Len(t, heatmap.Rows, 3)

	jane := heatmap.Rows[0]
	require.NotNil(t, jane.Scores[0].Value)
	assert.Equal(t, 100.0, *jane.Scores[0].Value)
	assert.Equal(t, 50.0, *jane.Scores[1].Value)
	assert.Nil(t, jane.Scores[2].Value)

	john := heatmap.Rows[1]
	assert.Equal(t, 95.0, *john.Scores[0].Value)
	assert.Nil(t, john.Scores[1].Value)
}

func TestHistogram(t *testing.T) {
	bins := Histogram(sampleResults())
	require.Len(t, bins, 10)
	assert.Equal(t, "0-10%", bins[0].Range)
	assert.Equal(t, "90-100%", bins[9].Range)
	assert.Equal(t, 1, bins[6].Count)
	assert.Equal(t, 1, bins[7].Count)
	assert.Equal(t, 1, bins[9].Count)

	empty := Histogram([]resultapimodels.ResultView{{CandidateName: "Zero"}})
	assert.Equal(t, 1, empty[0].Count)
}

func TestSummary(t *testing.T) {
	summary := Summary(sampleResults())
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 100.0, summary.Best)
	assert.InDelta(t, 63.33, summary.Worst, 0.01)
	assert.InDelta(t, 79.44, summary.Average, 0.01)

	assert.Equal(t, 0, Summary(nil).Count)
	assert.Equal(t, 0.0, Summary(nil).Best)
}

func TestExportWorkbook(t *testing.T) {
	buf, err := xlsExporter().ExportStatistics(Build(sampleResults()))
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Leaderboard", "Heatmap", "Distribution"}, f.GetSheetList())
	name, err := f.GetCellValue("Leaderboard", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)
	header, err := f.GetCellValue("Heatmap", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Go", header)
}

func xlsExporter() xlsexport.Provider {
	xlsexport.NewHandler()
	return xlsexport.Instance
}
