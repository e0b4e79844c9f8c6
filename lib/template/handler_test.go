package templatehandler

import (
	"testing"

	"interview-scorer-backend/db"
	settingshandler "interview-scorer-backend/lib/settings"
	"interview-scorer-backend/models"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getInstance(t *testing.T) Provider {
	DB, err := db.OpenInMemory()
	require.NoError(t, err)
	return New(DB, settingshandler.New(DB))
}

func TestHandler(t *testing.T) {
	t.Run("create, get and list", func(t *testing.T) {
		handler := getInstance(t)
		created, err := handler.Create("Go Developer")
		require.NoError(t, err)
		assert.Equal(t, "Go Developer", created.Name)
		require.Len(t, created.Categories, 1)

		got, err := handler.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		list, err := handler.List()
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
	t.Run("get unknown", func(t *testing.T) {
		handler := getInstance(t)
		_, err := handler.Get("nope")
		assert.True(t, models.IsNotFound(err))
	})
	t.Run("editing is persisted", func(t *testing.T) {
		handler := getInstance(t)
		tpl, err := handler.Create("Go Developer")
		require.NoError(t, err)
		catID := tpl.Categories[0].ID

		tpl, err = handler.AddQuestion(tpl.ID, catID)
		require.NoError(t, err)
		require.Len(t, tpl.Questions, 1)
		qID := tpl.Questions[0].ID
		text := "What is a slice header?"
		_, err = handler.UpdateQuestion(tpl.ID, qID, templateapimodels.QuestionPatch{Text: &text})
		require.NoError(t, err)

		stored, err := handler.Get(tpl.ID)
		require.NoError(t, err)
		q, ok := stored.FindQuestion(qID)
		require.True(t, ok)
		assert.Equal(t, text, q.Text)

		stored, err = handler.RemoveCategory(tpl.ID, catID)
		require.NoError(t, err)
		assert.Empty(t, stored.Questions)
		assert.Empty(t, stored.Categories)
	})
	t.Run("rename rejects empty name", func(t *testing.T) {
		handler := getInstance(t)
		tpl, err := handler.Create("Go Developer")
		require.NoError(t, err)
		_, err = handler.Rename(tpl.ID, " ")
		assert.True(t, models.IsValidationError(err))
	})
	t.Run("duplicate and delete", func(t *testing.T) {
		handler := getInstance(t)
		tpl, err := handler.Create("Go Developer")
		require.NoError(t, err)
		dup, err := handler.Duplicate(tpl.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go Developer (Copy)", dup.Name)
		assert.NotEqual(t, tpl.Categories[0].ID, dup.Categories[0].ID)

		require.NoError(t, handler.Delete(tpl.ID))
		list, err := handler.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, dup.ID, list[0].ID)
		assert.True(t, models.IsNotFound(handler.Delete(tpl.ID)))
	})
	t.Run("feedback options include custom", func(t *testing.T) {
		handler := getInstance(t)
		tpl, err := handler.Create("Go Developer")
		require.NoError(t, err)
		tpl, err = handler.AddQuestion(tpl.ID, tpl.Categories[0].ID)
		require.NoError(t, err)
		qID := tpl.Questions[0].ID
		_, err = handler.AddCustomFeedback(tpl.ID, qID)
		require.NoError(t, err)

		options, err := handler.FeedbackOptions(tpl.ID, qID)
		require.NoError(t, err)
		require.Len(t, options, 5)
		assert.Equal(t, "Correct Answer", options[0].Label)
		assert.True(t, options[4].IsCustom)
	})
	t.Run("seed demo once", func(t *testing.T) {
		handler := getInstance(t)
		require.NoError(t, handler.SeedDemo())
		require.NoError(t, handler.SeedDemo())
		list, err := handler.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Full Stack Developer Internship", list[0].Name)
		assert.Len(t, list[0].Questions, 3)
		assert.NoError(t, list[0].Validate())
	})
}
