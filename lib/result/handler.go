package resulthandler

import (
	"fmt"
	"strings"
	"time"

	"interview-scorer-backend/db"
	pdfexport "interview-scorer-backend/lib/export/pdf"
	resultstore "interview-scorer-backend/lib/result/store"
	runstore "interview-scorer-backend/lib/run/store"
	"interview-scorer-backend/lib/scoring"
	settingshandler "interview-scorer-backend/lib/settings"
	"interview-scorer-backend/lib/smtp"
	templatehandler "interview-scorer-backend/lib/template"
	"interview-scorer-backend/lib/utils/helpers"
	initchecker "interview-scorer-backend/lib/utils/init-checker"
	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
	templateapimodels "interview-scorer-backend/models/api/template"
	dbmodels "interview-scorer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Save(request resultapimodels.SaveRequest) (resultapimodels.ResultView, error)
	Get(id string) (resultapimodels.ResultDetails, error)
	List(filter resultapimodels.ListFilter) ([]resultapimodels.ResultView, error)
	Update(id string, request resultapimodels.UpdateRequest) (resultapimodels.ResultView, error)
	Delete(id string) error
	Import(view resultapimodels.ResultView) (resultapimodels.ResultView, error)
	Report(id string) (body []byte, fileName string, err error)
	Share(id, email string) error
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB, templatehandler.Instance, settingshandler.Instance, smtp.Instance)
}

func New(DB *gorm.DB, templateProvider templatehandler.Provider, settingsProvider settingshandler.Provider, mailer smtp.Provider) Provider {
	instance := impl{
		store:            resultstore.NewInstance(DB),
		runStore:         runstore.NewInstance(DB),
		templateProvider: templateProvider,
		settingsProvider: settingsProvider,
		mailer:           mailer,
	}
	initchecker.CheckInit(
		"templateProvider", instance.templateProvider,
		"settingsProvider", instance.settingsProvider,
	)
	return instance
}

type impl struct {
	store            resultstore.Provider
	runStore         runstore.Provider
	templateProvider templatehandler.Provider
	settingsProvider settingshandler.Provider
	mailer           smtp.Provider
}

// Save проводит оценку ответов по текущей шкале и сохраняет неизменяемый снимок шаблона
func (i impl) Save(request resultapimodels.SaveRequest) (resultapimodels.ResultView, error) {
	if err := request.Validate(); err != nil {
		return resultapimodels.ResultView{}, err
	}
	logger := log.
		WithField("template_id", request.TemplateID).
		WithField("candidate", request.CandidateName)
	tpl, err := i.templateProvider.Get(request.TemplateID)
	if err != nil {
		return resultapimodels.ResultView{}, err
	}
	if err = i.checkRun(request.RecruitmentRunID, ""); err != nil {
		return resultapimodels.ResultView{}, err
	}
	settings, err := i.settingsProvider.Get()
	if err != nil {
		return resultapimodels.ResultView{}, err
	}
	answers := make(map[string]resultapimodels.AnswerData, len(request.Answers))
	for _, answer := range request.Answers {
		q, ok := tpl.FindQuestion(answer.QuestionID)
		if !ok {
			return resultapimodels.ResultView{}, models.NewValidationError("вопрос %s отсутствует в шаблоне", answer.QuestionID)
		}
		data, err := scoring.ResolveAnswer(q, settings, answer.Feedback, answer.IsCustom)
		if err != nil {
			if errors.Is(err, models.ErrFeedbackNotFound) {
				return resultapimodels.ResultView{}, models.NewValidationError("%s", err.Error())
			}
			return resultapimodels.ResultView{}, err
		}
		data.Note = strings.TrimSpace(answer.Note)
		answers[q.ID] = data
	}

	now := time.Now()
	view := snapshot(tpl, answers)
	view.ID = helpers.NewID()
	view.CandidateName = strings.TrimSpace(request.CandidateName)
	view.Summary = request.Summary
	view.RecruitmentRunID = request.RecruitmentRunID
	view.Date = now
	if request.StartedAt != nil && !request.StartedAt.IsZero() {
		view.Date = *request.StartedAt
	}
	view.CompletedAt = &now

	id, err := i.store.Create(dbmodels.NewInterviewResult(view))
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения результата интервью")
		return resultapimodels.ResultView{}, err
	}
	logger.
		WithField("result_id", id).
		WithField("total_score", view.TotalScore).
		Info("результат интервью сохранен")
	return view, nil
}

func (i impl) Get(id string) (resultapimodels.ResultDetails, error) {
	view, err := i.get(id)
	if err != nil {
		return resultapimodels.ResultDetails{}, err
	}
	return scoring.Details(view), nil
}

func (i impl) List(filter resultapimodels.ListFilter) ([]resultapimodels.ResultView, error) {
	recList, err := i.store.List(dbmodels.ResultFilter{RecruitmentRunID: filter.RecruitmentRunID})
	if err != nil {
		log.WithError(err).Error("ошибка получения списка результатов")
		return nil, err
	}
	result := make([]resultapimodels.ResultView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Update(id string, request resultapimodels.UpdateRequest) (resultapimodels.ResultView, error) {
	if err := request.Validate(); err != nil {
		return resultapimodels.ResultView{}, err
	}
	view, err := i.get(id)
	if err != nil {
		return resultapimodels.ResultView{}, err
	}
	if request.Summary != nil {
		view.Summary = *request.Summary
	}
	if request.RecruitmentRunID != nil {
		if err = i.checkRun(*request.RecruitmentRunID, view.RecruitmentRunID); err != nil {
			return resultapimodels.ResultView{}, err
		}
		view.RecruitmentRunID = *request.RecruitmentRunID
	}
	if err = i.store.Save(dbmodels.NewInterviewResult(view)); err != nil {
		log.WithField("result_id", id).WithError(err).Error("ошибка обновления результата интервью")
		return resultapimodels.ResultView{}, err
	}
	return view, nil
}

func (i impl) Delete(id string) error {
	if _, err := i.get(id); err != nil {
		return err
	}
	if err := i.store.Delete(id); err != nil {
		log.WithField("result_id", id).WithError(err).Error("ошибка удаления результата интервью")
		return err
	}
	log.WithField("result_id", id).Info("результат интервью удален")
	return nil
}

// Import сохраняет результат из файла обмена под новым идентификатором.
// Ссылка на несуществующий набор сбрасывается.
func (i impl) Import(view resultapimodels.ResultView) (resultapimodels.ResultView, error) {
	if strings.TrimSpace(view.CandidateName) == "" {
		return resultapimodels.ResultView{}, models.NewValidationError("не указано имя кандидата")
	}
	view.ID = helpers.NewID()
	if view.Date.IsZero() {
		view.Date = time.Now()
	}
	if view.RecruitmentRunID != "" {
		run, err := i.runStore.GetByID(view.RecruitmentRunID)
		if err != nil {
			return resultapimodels.ResultView{}, err
		}
		if run == nil {
			view.RecruitmentRunID = ""
		}
	}
	if _, err := i.store.Create(dbmodels.NewInterviewResult(view)); err != nil {
		log.WithError(err).Error("ошибка импорта результата интервью")
		return resultapimodels.ResultView{}, err
	}
	log.
		WithField("result_id", view.ID).
		WithField("candidate", view.CandidateName).
		Info("результат интервью импортирован")
	return view, nil
}

func (i impl) Report(id string) (body []byte, fileName string, err error) {
	details, err := i.Get(id)
	if err != nil {
		return nil, "", err
	}
	body, err = pdfexport.GenerateResultReport(details)
	if err != nil {
		log.WithField("result_id", id).WithError(err).Error("ошибка формирования отчета")
		return nil, "", err
	}
	return body, helpers.FileName(details.CandidateName, "report", "pdf"), nil
}

func (i impl) Share(id, email string) error {
	if i.mailer == nil || !i.mailer.IsConfigured() {
		return models.NewValidationError("отправка почты не настроена")
	}
	details, err := i.Get(id)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("%s - %s", details.CandidateName, details.TemplateName)
	return i.mailer.SendEMail(email, subject, Scorecard(details))
}

// Scorecard текстовая карточка результата для письма и консоли
func Scorecard(details resultapimodels.ResultDetails) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Candidate: %s\r\n", details.CandidateName))
	sb.WriteString(fmt.Sprintf("Template: %s\r\n", details.TemplateName))
	sb.WriteString(fmt.Sprintf("Date: %s\r\n", details.Date.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Score: %.1f / %.1f (%.0f%%)\r\n\r\n",
		details.Score.Total, details.Score.Max, details.Score.Percentage))
	for _, cat := range details.CategoryScores {
		sb.WriteString(fmt.Sprintf("%s: %.1f / %.1f (%d%%)\r\n", cat.Name, cat.Score, cat.Max, cat.Proficiency))
	}
	if details.Summary != "" {
		sb.WriteString("\r\nSummary:\r\n")
		sb.WriteString(details.Summary)
		sb.WriteString("\r\n")
	}
	return sb.String()
}

func (i impl) get(id string) (resultapimodels.ResultView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return resultapimodels.ResultView{}, err
	}
	if rec == nil {
		return resultapimodels.ResultView{}, models.ErrResultNotFound
	}
	return rec.ToModel(), nil
}

// checkRun привязать можно только к активному набору, либо оставить текущую привязку
func (i impl) checkRun(runID, linkedID string) error {
	if runID == "" || runID == linkedID {
		return nil
	}
	run, err := i.runStore.GetByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return models.NewValidationError("набор %s не найден", runID)
	}
	if run.Status != models.RunStatusActive {
		return models.NewValidationError("набор %s завершен", run.Name)
	}
	return nil
}

// snapshot копия категорий и вопросов шаблона с ответами и итоговым баллом
func snapshot(tpl templateapimodels.TemplateView, answers map[string]resultapimodels.AnswerData) resultapimodels.ResultView {
	view := resultapimodels.ResultView{
		TemplateName: tpl.Name,
		Categories:   append([]templateapimodels.Category{}, tpl.Categories...),
		Questions:    make([]resultapimodels.QuestionResult, 0, len(tpl.Questions)),
	}
	for _, q := range tpl.Questions {
		item := resultapimodels.QuestionResult{Question: q.Copy()}
		if answer, ok := answers[q.ID]; ok {
			answer := answer
			item.Answer = &answer
		}
		view.Questions = append(view.Questions, item)
	}
	stats := scoring.Compute(tpl.Questions, answers)
	view.TotalScore = stats.Total
	view.MaxPossibleScore = stats.Max
	return view
}
