package scoring

import (
	"testing"

	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
	settingsapimodels "interview-scorer-backend/models/api/settings"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate() templateapimodels.TemplateView {
	return templateapimodels.TemplateView{
		ID:   "tpl",
		Name: "Backend",
		Categories: []templateapimodels.Category{
			{ID: "cat-b", Name: "Databases", Order: 1},
			{ID: "cat-a", Name: "Frontend", Order: 0},
		},
		Questions: []templateapimodels.Question{
			{ID: "q1", Text: "Explain the event loop in JavaScript.", Type: models.QuestionTypeDirect, Multiplier: 1.5, CategoryID: "cat-a", Order: 0},
			{ID: "q2", Text: "State management", Type: models.QuestionTypeIndirect, Multiplier: 1.2, CategoryID: "cat-a", Order: 1},
			{ID: "q3", Text: "SQL vs NoSQL", Type: models.QuestionTypeDirect, Multiplier: 1, CategoryID: "cat-b", Order: 0,
				CustomFeedbacks: []templateapimodels.CustomFeedback{{ID: "f1", Label: "Partially", Score: 150}}},
		},
	}
}

func TestScoring(t *testing.T) {
	settings := settingsapimodels.DefaultSettings()

	t.Run(`max score is sum of 100*multiplier`, func(t *testing.T) {
		tpl := sampleTemplate()
		stats := Compute(tpl.Questions, nil)
		assert.InDelta(t, 370.0, stats.Max, 0.0001)
		assert.Equal(t, 0.0, stats.Total)
		assert.Equal(t, 0.0, stats.Percentage)
	})

	t.Run(`answer score is multiplied and capped`, func(t *testing.T) {
		tpl := sampleTemplate()
		answer, err := ResolveAnswer(tpl.Questions[0], settings, "CORRECT", false)
		require.Nil(t, err)
		require.Equal(t, "Correct Answer", answer.Feedback)
		assert.InDelta(t, 150.0, answer.Score, 0.0001)

		custom, err := ResolveAnswer(tpl.Questions[2], settings, "Partially", true)
		require.Nil(t, err)
		require.True(t, custom.IsCustom)
		assert.InDelta(t, 100.0, custom.Score, 0.0001)

		negative := Answer(tpl.Questions[2], "bad", -20, true)
		assert.Equal(t, 0.0, negative.Score)
	})

	t.Run(`resolve by label and unknown feedback`, func(t *testing.T) {
		tpl := sampleTemplate()
		answer, err := ResolveAnswer(tpl.Questions[1], settings, "Good", false)
		require.Nil(t, err)
		assert.InDelta(t, 90.0, answer.Score, 0.0001)

		_, err = ResolveAnswer(tpl.Questions[1], settings, "CORRECT", false)
		require.True(t, errors.Is(err, models.ErrFeedbackNotFound))

		_, err = ResolveAnswer(tpl.Questions[1], settings, "Partially", true)
		require.NotNil(t, err)
	})

	t.Run(`total never exceeds max`, func(t *testing.T) {
		tpl := sampleTemplate()
		answers := map[string]resultapimodels.AnswerData{
			"q1": {Feedback: "x", Score: 10000},
			"q2": {Feedback: "x", Score: 120},
			"q3": {Feedback: "x", Score: 100},
		}
		stats := Compute(tpl.Questions, answers)
		assert.InDelta(t, stats.Max, stats.Total, 0.0001)
		assert.InDelta(t, 100.0, stats.Percentage, 0.0001)
	})

	t.Run(`category breakdown follows category order`, func(t *testing.T) {
		tpl := sampleTemplate()
		answers := map[string]resultapimodels.AnswerData{
			"q1": Answer(tpl.Questions[0], "Correct Answer", 100, false),
			"q3": Answer(tpl.Questions[2], "Wrong Answer", 0, false),
		}
		breakdown := CategoryBreakdown(tpl.Categories, tpl.Questions, answers)
		require.Len(t, breakdown, 2)
		require.Equal(t, "Frontend", breakdown[0].Name)
		assert.InDelta(t, 150.0, breakdown[0].Score, 0.0001)
		assert.InDelta(t, 270.0, breakdown[0].Max, 0.0001)
		assert.Equal(t, 56, breakdown[0].Proficiency)
		assert.Equal(t, 1, breakdown[0].Answered)
		assert.Equal(t, 2, breakdown[0].Questions)
		require.Equal(t, "Databases", breakdown[1].Name)
		assert.Equal(t, 0, breakdown[1].Proficiency)
	})

	t.Run(`question series ordered by category then question`, func(t *testing.T) {
		tpl := sampleTemplate()
		answers := map[string]resultapimodels.AnswerData{
			"q2": Answer(tpl.Questions[1], "Good", 75, false),
		}
		series := QuestionSeries(tpl.Categories, tpl.Questions, answers)
		require.Len(t, series, 3)
		assert.Equal(t, "Q1", series[0].Name)
		assert.Equal(t, "q1", series[0].QuestionID)
		assert.Equal(t, "Explain the eve...", series[0].ShortText)
		assert.Equal(t, "q2", series[1].QuestionID)
		assert.InDelta(t, 90.0, series[1].Score, 0.0001)
		assert.InDelta(t, 30.0, series[1].Missed, 0.0001)
		assert.Equal(t, "q3", series[2].QuestionID)
	})

	t.Run(`feedback options list global scale then custom`, func(t *testing.T) {
		tpl := sampleTemplate()
		options := FeedbackOptions(tpl.Questions[2], settings)
		require.Len(t, options, 5)
		assert.Equal(t, "CORRECT", options[0].Key)
		assert.Equal(t, "TRIED", options[1].Key)
		assert.True(t, options[4].IsCustom)
		assert.Equal(t, "Partially", options[4].Label)

		indirect := FeedbackOptions(tpl.Questions[1], settings)
		require.Len(t, indirect, 4)
		assert.Equal(t, "EXCELLENT", indirect[0].Key)
	})
}
