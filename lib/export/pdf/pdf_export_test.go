package pdfexport

import (
	"bytes"
	"testing"
	"time"

	"interview-scorer-backend/lib/scoring"
	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cyrillicResult() resultapimodels.ResultDetails {
	view := resultapimodels.ResultView{
		ID:            "r1",
		TemplateName:  "Разработчик Go",
		CandidateName: "Иван Петров",
		Date:          time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Categories:    []templateapimodels.Category{{ID: "c1", Name: "Базы данных"}},
		Questions: []resultapimodels.QuestionResult{
			{
				Question: templateapimodels.Question{ID: "q1", Text: "Что такое индекс?", Type: models.QuestionTypeDirect, Multiplier: 1, CategoryID: "c1"},
				Answer:   &resultapimodels.AnswerData{Feedback: "Верно", Score: 100, Note: "уверенно"},
			},
			{
				Question: templateapimodels.Question{ID: "q2", Text: "Уровни изоляции", Type: models.QuestionTypeDirect, Multiplier: 1, CategoryID: "c1", Order: 1},
			},
		},
		TotalScore:       100,
		MaxPossibleScore: 200,
		Summary:          "Рекомендую к найму",
	}
	return scoring.Details(view)
}

func TestGenerateResultReport(t *testing.T) {
	body, err := GenerateResultReport(cyrillicResult())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	// кириллица выводится встроенным TrueType шрифтом, а не базовым Helvetica
	assert.True(t, bytes.Contains(body, []byte("/FontFile2")))
	assert.False(t, bytes.Contains(body, []byte("/Helvetica")))
}

func TestGenerateResultReportEmpty(t *testing.T) {
	body, err := GenerateResultReport(scoring.Details(resultapimodels.ResultView{CandidateName: "Jane Doe"}))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
