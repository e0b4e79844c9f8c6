package backuphandler

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"interview-scorer-backend/db"
	resulthandler "interview-scorer-backend/lib/result"
	runhandler "interview-scorer-backend/lib/run"
	settingshandler "interview-scorer-backend/lib/settings"
	templatehandler "interview-scorer-backend/lib/template"
	"interview-scorer-backend/models"
	backupapimodels "interview-scorer-backend/models/api/backup"
	resultapimodels "interview-scorer-backend/models/api/result"
	runapimodels "interview-scorer-backend/models/api/run"
	settingsapimodels "interview-scorer-backend/models/api/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type storageMock struct {
	objects map[string][]byte
}

func (s *storageMock) MakeBucket(ctx context.Context) error {
	return nil
}

func (s *storageMock) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	s.objects[key] = data
	return nil
}

func (s *storageMock) GetObject(ctx context.Context, key string) ([]byte, error) {
	return s.objects[key], nil
}

func (s *storageMock) ListObjects(ctx context.Context, prefix string) ([]backupapimodels.ObjectView, error) {
	result := []backupapimodels.ObjectView{}
	for key, data := range s.objects {
		if strings.HasPrefix(key, prefix) {
			result = append(result, backupapimodels.ObjectView{Key: key, Size: int64(len(data))})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

type fixture struct {
	DB        *gorm.DB
	handler   Provider
	storage   *storageMock
	settings  settingshandler.Provider
	templates templatehandler.Provider
	results   resulthandler.Provider
	runs      runhandler.Provider
}

func newFixture(t *testing.T) fixture {
	DB, err := db.OpenInMemory()
	require.NoError(t, err)
	settings := settingshandler.New(DB)
	templates := templatehandler.New(DB, settings)
	storage := &storageMock{objects: map[string][]byte{}}
	return fixture{
		DB:        DB,
		handler:   New(DB, settings, storage, "backups"),
		storage:   storage,
		settings:  settings,
		templates: templates,
		results:   resulthandler.New(DB, templates, settings, nil),
		runs:      runhandler.New(DB),
	}
}

func (f fixture) seed(t *testing.T) {
	require.NoError(t, f.templates.SeedDemo())
	list, err := f.templates.List()
	require.NoError(t, err)
	run, err := f.runs.Create(runapimodels.RunData{Name: "Spring", StartDate: "2024-03-01"})
	require.NoError(t, err)
	_, err = f.results.Save(resultapimodels.SaveRequest{
		TemplateID:       list[0].ID,
		CandidateName:    "Jane",
		RecruitmentRunID: run.ID,
		Answers: []resultapimodels.AnswerRequest{
			{QuestionID: list[0].Questions[0].ID, Feedback: "CORRECT"},
		},
	})
	require.NoError(t, err)
	settings := settingsapimodels.DefaultSettings()
	settings.Indirect[models.IndirectGood] = settingsapimodels.FeedbackSetting{Label: "Good", Score: 70}
	_, err = f.settings.Save(settings)
	require.NoError(t, err)
}

func TestSnapshotRestore(t *testing.T) {
	source := newFixture(t)
	source.seed(t)
	bundle, err := source.handler.Snapshot()
	require.NoError(t, err)
	assert.Len(t, bundle.Templates, 1)
	assert.Len(t, bundle.Results, 1)
	assert.Len(t, bundle.Runs, 1)
	assert.Equal(t, 70.0, bundle.Settings.Indirect[models.IndirectGood].Score)

	target := newFixture(t)
	_, err = target.templates.Create("to be replaced")
	require.NoError(t, err)
	summary, err := target.handler.Restore(bundle)
	require.NoError(t, err)
	assert.Equal(t, backupapimodels.RestoreSummary{Templates: 1, Results: 1, Runs: 1}, summary)

	templates, err := target.templates.List()
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, bundle.Templates[0].ID, templates[0].ID)

	runs, err := target.runs.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(1), runs[0].ResultCount)

	settings, err := target.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 70.0, settings.Indirect[models.IndirectGood].Score)
}

func TestRestoreRejectsInvalidBundle(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	bundle, err := f.handler.Snapshot()
	require.NoError(t, err)
	bundle.Templates[0].Questions[0].CategoryID = "missing"

	_, err = f.handler.Restore(bundle)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
	results, err := f.results.List(resultapimodels.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestUploadAndRestoreObject(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	object, err := f.handler.Upload(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(object.Key, "backups/backup-"))
	assert.True(t, strings.HasSuffix(object.Key, ".yaml"))

	list, err := f.handler.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	results, err := f.results.List(resultapimodels.ListFilter{})
	require.NoError(t, err)
	require.NoError(t, f.results.Delete(results[0].ID))

	summary, err := f.handler.RestoreObject(context.Background(), object.Key)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Results)
	results, err = f.results.List(resultapimodels.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestWithoutStorage(t *testing.T) {
	DB, err := db.OpenInMemory()
	require.NoError(t, err)
	handler := New(DB, settingshandler.New(DB), nil, "")
	_, err = handler.Upload(context.Background())
	assert.True(t, models.IsValidationError(err))
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2024, 3, 1, 4, 5, 6, 0, time.UTC)
	assert.Equal(t, "backups/backup-20240301-040506.yaml", ObjectKey("backups", at))
	assert.Equal(t, "backup-20240301-040506.yaml", ObjectKey("", at))
}
