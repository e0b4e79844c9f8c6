package resulthandler

import (
	"testing"
	"time"

	"interview-scorer-backend/db"
	resultstore "interview-scorer-backend/lib/result/store"
	runstore "interview-scorer-backend/lib/run/store"
	settingshandler "interview-scorer-backend/lib/settings"
	templatehandler "interview-scorer-backend/lib/template"
	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
	runapimodels "interview-scorer-backend/models/api/run"
	templateapimodels "interview-scorer-backend/models/api/template"
	dbmodels "interview-scorer-backend/models/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mailerMock struct {
	to      string
	subject string
	message string
}

func (m *mailerMock) SendEMail(to, subject, message string) error {
	m.to = to
	m.subject = subject
	m.message = message
	return nil
}

func (m *mailerMock) IsConfigured() bool {
	return true
}

type fixture struct {
	DB       *gorm.DB
	handler  Provider
	mailer   *mailerMock
	template templateapimodels.TemplateView
}

// newFixture шаблон: две категории, прямой вопрос x1.5 и косвенный вопрос x1
func newFixture(t *testing.T) fixture {
	DB, err := db.OpenInMemory()
	require.NoError(t, err)
	settings := settingshandler.New(DB)
	templates := templatehandler.New(DB, settings)
	mailer := &mailerMock{}

	tpl, err := templates.Create("Go Developer")
	require.NoError(t, err)
	generalID := tpl.Categories[0].ID
	tpl, err = templates.AddCategory(tpl.ID, "Databases")
	require.NoError(t, err)
	dbCatID := tpl.Categories[1].ID

	tpl, err = templates.AddQuestion(tpl.ID, generalID)
	require.NoError(t, err)
	multiplier := 1.5
	tpl, err = templates.UpdateQuestion(tpl.ID, tpl.Questions[0].ID, templateapimodels.QuestionPatch{Multiplier: &multiplier})
	require.NoError(t, err)

	tpl, err = templates.AddQuestion(tpl.ID, dbCatID)
	require.NoError(t, err)
	indirect := models.QuestionTypeIndirect
	tpl, err = templates.UpdateQuestion(tpl.ID, tpl.Questions[1].ID, templateapimodels.QuestionPatch{Type: &indirect})
	require.NoError(t, err)
	tpl, err = templates.AddCustomFeedback(tpl.ID, tpl.Questions[1].ID)
	require.NoError(t, err)

	return fixture{
		DB:       DB,
		handler:  New(DB, templates, settings, mailer),
		mailer:   mailer,
		template: tpl,
	}
}

func (f fixture) request(answers ...resultapimodels.AnswerRequest) resultapimodels.SaveRequest {
	return resultapimodels.SaveRequest{
		TemplateID:    f.template.ID,
		CandidateName: "  Jane Doe ",
		Answers:       answers,
	}
}

func TestSave(t *testing.T) {
	t.Run("scores are multiplied and summed", func(t *testing.T) {
		f := newFixture(t)
		q1, q2 := f.template.Questions[0], f.template.Questions[1]
		view, err := f.handler.Save(f.request(
			resultapimodels.AnswerRequest{QuestionID: q1.ID, Feedback: "CORRECT", Note: "fast"},
			resultapimodels.AnswerRequest{QuestionID: q2.ID, Feedback: "New Feedback", IsCustom: true},
		))
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", view.CandidateName)
		assert.Equal(t, 250.0, view.MaxPossibleScore)
		assert.Equal(t, 200.0, view.TotalScore)
		assert.NotNil(t, view.CompletedAt)
		require.Len(t, view.Questions, 2)
		require.NotNil(t, view.Questions[0].Answer)
		assert.Equal(t, "Correct Answer", view.Questions[0].Answer.Feedback)
		assert.Equal(t, "fast", view.Questions[0].Answer.Note)
		assert.True(t, view.Questions[1].Answer.IsCustom)

		details, err := f.handler.Get(view.ID)
		require.NoError(t, err)
		assert.Equal(t, 80.0, details.Score.Percentage)
		require.Len(t, details.CategoryScores, 2)
		assert.Equal(t, 100, details.CategoryScores[0].Proficiency)
		assert.Equal(t, 50, details.CategoryScores[1].Proficiency)
		require.Len(t, details.Series, 2)
		assert.Equal(t, "Q1", details.Series[0].Name)
	})
	t.Run("unanswered questions count to max", func(t *testing.T) {
		f := newFixture(t)
		view, err := f.handler.Save(f.request())
		require.NoError(t, err)
		assert.Equal(t, 0.0, view.TotalScore)
		assert.Equal(t, 250.0, view.MaxPossibleScore)
	})
	t.Run("started at is kept as date", func(t *testing.T) {
		f := newFixture(t)
		started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		request := f.request()
		request.StartedAt = &started
		view, err := f.handler.Save(request)
		require.NoError(t, err)
		assert.True(t, started.Equal(view.Date))
	})
	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		q1 := f.template.Questions[0]

		request := f.request()
		request.CandidateName = " "
		_, err := f.handler.Save(request)
		assert.True(t, models.IsValidationError(err))

		_, err = f.handler.Save(f.request(resultapimodels.AnswerRequest{QuestionID: q1.ID, Feedback: "EXCELLENT"}))
		assert.True(t, models.IsValidationError(err))

		_, err = f.handler.Save(f.request(resultapimodels.AnswerRequest{QuestionID: "unknown", Feedback: "CORRECT"}))
		assert.True(t, models.IsValidationError(err))

		request = f.request()
		request.RecruitmentRunID = "unknown"
		_, err = f.handler.Save(request)
		assert.True(t, models.IsValidationError(err))

		request = f.request()
		request.TemplateID = "unknown"
		_, err = f.handler.Save(request)
		assert.True(t, models.IsNotFound(err))
	})
}

func TestSnapshotIsImmutable(t *testing.T) {
	f := newFixture(t)
	view, err := f.handler.Save(f.request())
	require.NoError(t, err)

	templates := templatehandler.New(f.DB, settingshandler.New(f.DB))
	_, err = templates.RemoveCategory(f.template.ID, f.template.Categories[0].ID)
	require.NoError(t, err)
	require.NoError(t, templates.Delete(f.template.ID))

	details, err := f.handler.Get(view.ID)
	require.NoError(t, err)
	assert.Len(t, details.Categories, 2)
	assert.Len(t, details.Questions, 2)
}

func TestUpdateAndList(t *testing.T) {
	f := newFixture(t)
	runID, err := runstore.NewInstance(f.DB).Create(dbmodels.NewRecruitmentRun(runapimodels.RunView{
		RunData: runapimodels.RunData{Name: "Spring", StartDate: "2024-03-01", Status: models.RunStatusActive},
	}))
	require.NoError(t, err)

	firstRequest := f.request()
	firstStarted := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	firstRequest.StartedAt = &firstStarted
	first, err := f.handler.Save(firstRequest)
	require.NoError(t, err)
	secondRequest := f.request()
	secondStarted := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	secondRequest.StartedAt = &secondStarted
	second, err := f.handler.Save(secondRequest)
	require.NoError(t, err)

	summary := "strong hire"
	updated, err := f.handler.Update(second.ID, resultapimodels.UpdateRequest{Summary: &summary, RecruitmentRunID: &runID})
	require.NoError(t, err)
	assert.Equal(t, summary, updated.Summary)
	assert.Equal(t, second.TotalScore, updated.TotalScore)

	list, err := f.handler.List(resultapimodels.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	list, err = f.handler.List(resultapimodels.ListFilter{RecruitmentRunID: runID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	require.NoError(t, f.handler.Delete(first.ID))
	_, err = f.handler.Get(first.ID)
	assert.True(t, models.IsNotFound(err))
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	f := newFixture(t)
	view, err := f.handler.Save(f.request())
	require.NoError(t, err)
	store := resultstore.NewInstance(f.DB)
	before, err := store.GetByID(view.ID)
	require.NoError(t, err)
	require.NotNil(t, before)
	require.False(t, before.CreatedAt.IsZero())

	summary := "no hire"
	_, err = f.handler.Update(view.ID, resultapimodels.UpdateRequest{Summary: &summary})
	require.NoError(t, err)

	after, err := store.GetByID(view.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.Equal(t, summary, after.Summary)
}

func TestCompletedRunLink(t *testing.T) {
	f := newFixture(t)
	runs := runstore.NewInstance(f.DB)
	activeID, err := runs.Create(dbmodels.NewRecruitmentRun(runapimodels.RunView{
		RunData: runapimodels.RunData{Name: "Spring", StartDate: "2024-03-01", Status: models.RunStatusActive},
	}))
	require.NoError(t, err)
	completedID, err := runs.Create(dbmodels.NewRecruitmentRun(runapimodels.RunView{
		RunData: runapimodels.RunData{Name: "Winter", StartDate: "2024-01-01", Status: models.RunStatusCompleted},
	}))
	require.NoError(t, err)

	request := f.request()
	request.RecruitmentRunID = completedID
	_, err = f.handler.Save(request)
	assert.True(t, models.IsValidationError(err))

	request.RecruitmentRunID = activeID
	view, err := f.handler.Save(request)
	require.NoError(t, err)

	_, err = f.handler.Update(view.ID, resultapimodels.UpdateRequest{RecruitmentRunID: &completedID})
	assert.True(t, models.IsValidationError(err))

	// набор завершился после привязки, текущая ссылка сохраняется
	run, err := runs.GetByID(activeID)
	require.NoError(t, err)
	run.Status = models.RunStatusCompleted
	require.NoError(t, runs.Save(*run))
	summary := "late note"
	updated, err := f.handler.Update(view.ID, resultapimodels.UpdateRequest{Summary: &summary, RecruitmentRunID: &activeID})
	require.NoError(t, err)
	assert.Equal(t, activeID, updated.RecruitmentRunID)
}

func TestImport(t *testing.T) {
	f := newFixture(t)
	view, err := f.handler.Save(f.request())
	require.NoError(t, err)

	source := view
	source.RecruitmentRunID = "missing-run"
	imported, err := f.handler.Import(source)
	require.NoError(t, err)
	assert.NotEqual(t, view.ID, imported.ID)
	assert.Empty(t, imported.RecruitmentRunID)
	assert.Equal(t, view.TotalScore, imported.TotalScore)
}

func TestReportAndShare(t *testing.T) {
	f := newFixture(t)
	q1 := f.template.Questions[0]
	view, err := f.handler.Save(f.request(resultapimodels.AnswerRequest{QuestionID: q1.ID, Feedback: "Tried but Failed"}))
	require.NoError(t, err)

	body, fileName, err := f.handler.Report(view.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe_report.pdf", fileName)
	assert.Equal(t, "%PDF", string(body[:4]))

	require.NoError(t, f.handler.Share(view.ID, "hr@example.com"))
	assert.Equal(t, "hr@example.com", f.mailer.to)
	assert.Contains(t, f.mailer.subject, "Jane Doe")
	assert.Contains(t, f.mailer.message, "Score: 60.0 / 250.0 (24%)")
}
