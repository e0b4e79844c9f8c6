package settingshandler

import (
	"testing"

	"interview-scorer-backend/db"
	"interview-scorer-backend/models"
	settingsapimodels "interview-scorer-backend/models/api/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getInstance(t *testing.T) Provider {
	DB, err := db.OpenInMemory()
	require.NoError(t, err)
	return New(DB)
}

func TestSettings(t *testing.T) {
	t.Run("defaults before first save", func(t *testing.T) {
		handler := getInstance(t)
		settings, err := handler.Get()
		require.NoError(t, err)
		assert.Equal(t, settingsapimodels.DefaultSettings(), settings)
	})
	t.Run("save and reset", func(t *testing.T) {
		handler := getInstance(t)
		settings := settingsapimodels.DefaultSettings()
		settings.Direct[models.DirectTried] = settingsapimodels.FeedbackSetting{Label: "Partially", Score: 50}
		_, err := handler.Save(settings)
		require.NoError(t, err)

		stored, err := handler.Get()
		require.NoError(t, err)
		assert.Equal(t, "Partially", stored.Direct[models.DirectTried].Label)
		assert.Equal(t, 50.0, stored.Direct[models.DirectTried].Score)

		reset, err := handler.Reset()
		require.NoError(t, err)
		assert.Equal(t, settingsapimodels.DefaultSettings(), reset)
		stored, err = handler.Get()
		require.NoError(t, err)
		assert.Equal(t, 40.0, stored.Direct[models.DirectTried].Score)
	})
	t.Run("empty label rejected", func(t *testing.T) {
		handler := getInstance(t)
		settings := settingsapimodels.DefaultSettings()
		settings.Indirect[models.IndirectGood] = settingsapimodels.FeedbackSetting{Label: " ", Score: 75}
		_, err := handler.Save(settings)
		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
	})
	t.Run("unknown key rejected", func(t *testing.T) {
		handler := getInstance(t)
		settings := settingsapimodels.DefaultSettings()
		settings.Direct["FOO"] = settingsapimodels.FeedbackSetting{Label: "Foo", Score: 10}
		_, err := handler.Save(settings)
		assert.True(t, models.IsValidationError(err))

		settings = settingsapimodels.DefaultSettings()
		settings.Indirect["FOO"] = settingsapimodels.FeedbackSetting{Label: "Foo", Score: 10}
		_, err = handler.Save(settings)
		assert.True(t, models.IsValidationError(err))
	})
}
