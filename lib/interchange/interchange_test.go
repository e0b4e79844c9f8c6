package interchange

import (
	"testing"
	"time"

	"interview-scorer-backend/models"
	backupapimodels "interview-scorer-backend/models/api/backup"
	resultapimodels "interview-scorer-backend/models/api/result"
	runapimodels "interview-scorer-backend/models/api/run"
	settingsapimodels "interview-scorer-backend/models/api/settings"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate() templateapimodels.TemplateView {
	return templateapimodels.TemplateView{
		ID:        "tpl-1",
		Name:      "Full Stack",
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Categories: []templateapimodels.Category{
			{ID: "cat-1", Name: "Frontend", Order: 0},
			{ID: "cat-2", Name: "Backend", Order: 1},
		},
		Questions: []templateapimodels.Question{
			{ID: "q1", Text: "Event loop?", Type: models.QuestionTypeDirect, Multiplier: 1.5, CategoryID: "cat-1", Order: 0,
				CustomFeedbacks: []templateapimodels.CustomFeedback{{ID: "f1", Label: "Partially", Score: 60}}},
			{ID: "q2", Text: "SQL vs NoSQL?", Type: models.QuestionTypeIndirect, Multiplier: 1, CategoryID: "cat-2", Order: 0},
		},
	}
}

func sampleResult() resultapimodels.ResultView {
	tpl := sampleTemplate()
	completed := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	return resultapimodels.ResultView{
		ID:               "res-1",
		TemplateName:     tpl.Name,
		CandidateName:    "Jane Doe",
		Date:             time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		CompletedAt:      &completed,
		Categories:       tpl.Categories,
		Questions: []resultapimodels.QuestionResult{
			{Question: tpl.Questions[0], Answer: &resultapimodels.AnswerData{Feedback: "Correct Answer", Score: 150, Note: "good"}},
			{Question: tpl.Questions[1]},
		},
		TotalScore:       150,
		MaxPossibleScore: 250,
		Summary:          "hire",
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("template", func(t *testing.T) {
		data, err := Dump(sampleTemplate())
		require.NoError(t, err)
		assert.Contains(t, string(data), "categoryId: cat-1")
		doc, err := Load(data)
		require.NoError(t, err)
		assert.Equal(t, KindTemplate, doc.Kind)
		require.NotNil(t, doc.Template)
		assert.Equal(t, sampleTemplate(), *doc.Template)
	})
	t.Run("result", func(t *testing.T) {
		data, err := Dump(sampleResult())
		require.NoError(t, err)
		doc, err := Load(data)
		require.NoError(t, err)
		assert.Equal(t, KindResult, doc.Kind)
		require.NotNil(t, doc.Result)
		assert.Equal(t, sampleResult(), *doc.Result)
	})
	t.Run("settings", func(t *testing.T) {
		data, err := Dump(settingsapimodels.DefaultSettings())
		require.NoError(t, err)
		doc, err := Load(data)
		require.NoError(t, err)
		assert.Equal(t, KindSettings, doc.Kind)
		assert.Equal(t, settingsapimodels.DefaultSettings(), *doc.Settings)
	})
	t.Run("run bundle", func(t *testing.T) {
		bundle := runapimodels.Bundle{
			RunInfo: runapimodels.RunView{ID: "run-1", RunData: runapimodels.RunData{
				Name: "Spring", StartDate: "2024-03-01", EndDate: "2024-03-31", Status: models.RunStatusActive,
			}},
			Results: []resultapimodels.ResultView{sampleResult()},
		}
		data, err := Dump(bundle)
		require.NoError(t, err)
		doc, err := Load(data)
		require.NoError(t, err)
		assert.Equal(t, KindRun, doc.Kind)
		assert.Equal(t, bundle, *doc.Run)
	})
	t.Run("backup", func(t *testing.T) {
		bundle := backupapimodels.Bundle{
			Templates: []templateapimodels.TemplateView{sampleTemplate()},
			Results:   []resultapimodels.ResultView{sampleResult()},
			Settings:  settingsapimodels.DefaultSettings(),
			Runs:      []runapimodels.RunView{},
		}
		data, err := Dump(bundle)
		require.NoError(t, err)
		doc, err := Load(data)
		require.NoError(t, err)
		assert.Equal(t, KindBackup, doc.Kind)
		require.Len(t, doc.Backup.Templates, 1)
		assert.Equal(t, sampleTemplate(), doc.Backup.Templates[0])
		assert.Equal(t, sampleResult(), doc.Backup.Results[0])
	})
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":      "name: [unclosed",
		"empty":          "",
		"unknown format": "foo: bar\n",
		"bad question type": `
name: T
categories: [{id: c1, name: General}]
questions: [{id: q1, text: Q, type: OPEN, multiplier: 1, categoryId: c1}]
`,
		"settings missing key": `
direct:
  CORRECT: {label: Correct, score: 100}
indirect:
  EXCELLENT: {label: Excellent, score: 100}
`,
		"settings unknown key": `
direct:
  CORRECT: {label: Correct, score: 100}
  TRIED: {label: Tried, score: 40}
  WRONG: {label: Wrong, score: 0}
  SILENT: {label: Silent, score: 0}
  FOO: {label: Foo, score: 10}
indirect:
  EXCELLENT: {label: Excellent, score: 100}
  GOOD: {label: Good, score: 75}
  NOT_GOOD: {label: Not Good, score: 25}
  BAD: {label: Bad, score: 0}
`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(data))
			require.Error(t, err)
			assert.True(t, IsImportError(err))
		})
	}
}

func TestLoadHandWrittenTemplate(t *testing.T) {
	data := `
id: abc
name: Imported
createdAt: 2024-01-02T03:04:05Z
categories:
  - id: c1
    name: General
    order: 0
questions:
  - id: q1
    text: Tell me about yourself
    type: INDIRECT
    multiplier: 2
    categoryId: c1
    order: 0
`
	doc, err := Load([]byte(data))
	require.NoError(t, err)
	require.Equal(t, KindTemplate, doc.Kind)
	assert.Equal(t, "Imported", doc.Template.Name)
	assert.Equal(t, 2.0, doc.Template.Questions[0].Multiplier)
	assert.Equal(t, models.QuestionTypeIndirect, doc.Template.Questions[0].Type)
	assert.NoError(t, doc.Template.Validate())
}
