package templatehandler

import (
	"testing"

	"interview-scorer-backend/models"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate() templateapimodels.TemplateView {
	return templateapimodels.TemplateView{
		ID:   "tpl-1",
		Name: "Backend",
		Categories: []templateapimodels.Category{
			{ID: "c1", Name: "Go", Order: 0},
			{ID: "c2", Name: "SQL", Order: 1},
			{ID: "c3", Name: "Soft", Order: 2},
		},
		Questions: []templateapimodels.Question{
			{ID: "q1", Text: "goroutines", Type: models.QuestionTypeDirect, Multiplier: 1, CategoryID: "c1", Order: 0,
				CustomFeedbacks: []templateapimodels.CustomFeedback{{ID: "f1", Label: "Partially", Score: 60}}},
			{ID: "q2", Text: "channels", Type: models.QuestionTypeIndirect, Multiplier: 2, CategoryID: "c1", Order: 1},
			{ID: "q3", Text: "joins", Type: models.QuestionTypeDirect, Multiplier: 1, CategoryID: "c2", Order: 0},
		},
	}
}

func TestNewTemplate(t *testing.T) {
	tpl := NewTemplate("")
	assert.Equal(t, defaultTemplateName, tpl.Name)
	require.Len(t, tpl.Categories, 1)
	assert.Equal(t, defaultCategoryName, tpl.Categories[0].Name)
	assert.Empty(t, tpl.Questions)
	assert.NoError(t, tpl.Validate())
}

func TestDuplicate(t *testing.T) {
	src := sampleTemplate()
	dup := Duplicate(src)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "Backend (Copy)", dup.Name)
	require.Len(t, dup.Categories, len(src.Categories))
	require.Len(t, dup.Questions, len(src.Questions))
	for i, cat := range dup.Categories {
		assert.NotEqual(t, src.Categories[i].ID, cat.ID)
		assert.Equal(t, src.Categories[i].Name, cat.Name)
	}
	for i, q := range dup.Questions {
		assert.NotEqual(t, src.Questions[i].ID, q.ID)
		srcCat, _ := src.FindCategory(src.Questions[i].CategoryID)
		dupCat, ok := dup.FindCategory(q.CategoryID)
		require.True(t, ok)
		assert.Equal(t, srcCat.Name, dupCat.Name)
	}
	assert.NotEqual(t, "f1", dup.Questions[0].CustomFeedbacks[0].ID)
	assert.NoError(t, dup.Validate())

	dup.Questions[0].CustomFeedbacks[0].Label = "changed"
	assert.Equal(t, "Partially", src.Questions[0].CustomFeedbacks[0].Label)
}

func TestCategoryEditing(t *testing.T) {
	t.Run("remove cascades to questions", func(t *testing.T) {
		tpl := sampleTemplate()
		require.NoError(t, RemoveCategory(&tpl, "c1"))
		assert.Len(t, tpl.Categories, 2)
		require.Len(t, tpl.Questions, 1)
		assert.Equal(t, "q3", tpl.Questions[0].ID)
	})
	t.Run("remove unknown", func(t *testing.T) {
		tpl := sampleTemplate()
		err := RemoveCategory(&tpl, "nope")
		assert.True(t, models.IsNotFound(err))
	})
	t.Run("move to target position", func(t *testing.T) {
		tpl := sampleTemplate()
		MoveCategory(&tpl, "c3", "c1")
		ids := []string{}
		for _, cat := range tpl.Categories {
			ids = append(ids, cat.ID)
		}
		assert.Equal(t, []string{"c3", "c1", "c2"}, ids)
		for i, cat := range tpl.Categories {
			assert.Equal(t, i, cat.Order)
		}
	})
	t.Run("move with unknown id is noop", func(t *testing.T) {
		tpl := sampleTemplate()
		MoveCategory(&tpl, "c1", "nope")
		assert.Equal(t, sampleTemplate().Categories, tpl.Categories)
		MoveCategory(&tpl, "c2", "c2")
		assert.Equal(t, sampleTemplate().Categories, tpl.Categories)
	})
	t.Run("add and rename", func(t *testing.T) {
		tpl := sampleTemplate()
		cat, err := AddCategory(&tpl, " Cloud ")
		require.NoError(t, err)
		assert.Equal(t, "Cloud", cat.Name)
		assert.Equal(t, 3, cat.Order)
		require.NoError(t, RenameCategory(&tpl, cat.ID, "DevOps"))
		found, ok := tpl.FindCategory(cat.ID)
		require.True(t, ok)
		assert.Equal(t, "DevOps", found.Name)

		_, err = AddCategory(&tpl, "  ")
		assert.True(t, models.IsValidationError(err))
	})
}

func TestQuestionEditing(t *testing.T) {
	t.Run("add appends to category", func(t *testing.T) {
		tpl := sampleTemplate()
		q, err := AddQuestion(&tpl, "c1")
		require.NoError(t, err)
		assert.Equal(t, 2, q.Order)
		assert.Equal(t, models.QuestionTypeDirect, q.Type)
		assert.Equal(t, 1.0, q.Multiplier)
	})
	t.Run("update moves to end of new category", func(t *testing.T) {
		tpl := sampleTemplate()
		category := "c2"
		multiplier := 3.0
		require.NoError(t, UpdateQuestion(&tpl, "q1", templateapimodels.QuestionPatch{
			CategoryID: &category,
			Multiplier: &multiplier,
		}))
		q, _ := tpl.FindQuestion("q1")
		assert.Equal(t, "c2", q.CategoryID)
		assert.Equal(t, 1, q.Order)
		assert.Equal(t, 3.0, q.Multiplier)
	})
	t.Run("update rejects bad multiplier", func(t *testing.T) {
		tpl := sampleTemplate()
		multiplier := 0.0
		err := UpdateQuestion(&tpl, "q1", templateapimodels.QuestionPatch{Multiplier: &multiplier})
		assert.True(t, models.IsValidationError(err))
	})
	t.Run("move swaps with neighbour", func(t *testing.T) {
		tpl := sampleTemplate()
		require.NoError(t, MoveQuestion(&tpl, "q2", templateapimodels.MoveUp))
		q1, _ := tpl.FindQuestion("q1")
		q2, _ := tpl.FindQuestion("q2")
		assert.Equal(t, 1, q1.Order)
		assert.Equal(t, 0, q2.Order)
	})
	t.Run("move at edge is noop", func(t *testing.T) {
		tpl := sampleTemplate()
		require.NoError(t, MoveQuestion(&tpl, "q3", templateapimodels.MoveDown))
		assert.Equal(t, sampleTemplate().Questions, tpl.Questions)
	})
	t.Run("remove", func(t *testing.T) {
		tpl := sampleTemplate()
		require.NoError(t, RemoveQuestion(&tpl, "q2"))
		_, ok := tpl.FindQuestion("q2")
		assert.False(t, ok)
		assert.True(t, models.IsNotFound(RemoveQuestion(&tpl, "q2")))
	})
}

func TestCustomFeedbackEditing(t *testing.T) {
	tpl := sampleTemplate()
	feedback, err := AddCustomFeedback(&tpl, "q2")
	require.NoError(t, err)
	assert.Equal(t, defaultFeedbackLabel, feedback.Label)
	assert.Equal(t, defaultFeedbackScore, feedback.Score)

	label := "Almost"
	score := 80.0
	require.NoError(t, UpdateCustomFeedback(&tpl, "q2", feedback.ID, templateapimodels.CustomFeedbackPatch{Label: &label, Score: &score}))
	q, _ := tpl.FindQuestion("q2")
	require.Len(t, q.CustomFeedbacks, 1)
	assert.Equal(t, "Almost", q.CustomFeedbacks[0].Label)
	assert.Equal(t, 80.0, q.CustomFeedbacks[0].Score)

	require.NoError(t, RemoveCustomFeedback(&tpl, "q2", feedback.ID))
	q, _ = tpl.FindQuestion("q2")
	assert.Empty(t, q.CustomFeedbacks)
	assert.True(t, models.IsNotFound(RemoveCustomFeedback(&tpl, "q2", feedback.ID)))
}
