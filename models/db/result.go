package dbmodels

import (
	"database/sql/driver"
	"time"

	resultapimodels "interview-scorer-backend/models/api/result"
	templateapimodels "interview-scorer-backend/models/api/template"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// InterviewResult результат интервью. Categories и Questions - снимок шаблона, после сохранения не меняются
type InterviewResult struct {
	BaseModel
	RecruitmentRunID *string           `gorm:"type:varchar(36);index"`
	TemplateName     string            `gorm:"type:varchar(255)"`
	CandidateName    string            `gorm:"type:varchar(255);index"`
	Date             time.Time         `gorm:"index"`
	CompletedAt      *time.Time
	Categories       TemplateCategories `gorm:"not null"`
	Questions        ResultQuestions    `gorm:"not null"`
	TotalScore       float64
	MaxPossibleScore float64
	Summary          string `gorm:"type:text"`
}

type ResultQuestions []resultapimodels.QuestionResult

func (j ResultQuestions) Value() (driver.Value, error) {
	if j == nil {
		j = ResultQuestions{}
	}
	return jsonValue(j)
}

func (j *ResultQuestions) Scan(value interface{}) error {
	return jsonScan(value, j)
}

func (ResultQuestions) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBType(db)
}

func (r InterviewResult) ToModel() resultapimodels.ResultView {
	view := resultapimodels.ResultView{
		ID:               r.ID,
		TemplateName:     r.TemplateName,
		CandidateName:    r.CandidateName,
		Date:             r.Date,
		CompletedAt:      r.CompletedAt,
		Categories:       append([]templateapimodels.Category{}, r.Categories...),
		Questions:        append([]resultapimodels.QuestionResult{}, r.Questions...),
		TotalScore:       r.TotalScore,
		MaxPossibleScore: r.MaxPossibleScore,
		Summary:          r.Summary,
	}
	if r.RecruitmentRunID != nil {
		view.RecruitmentRunID = *r.RecruitmentRunID
	}
	return view
}

func NewInterviewResult(view resultapimodels.ResultView) InterviewResult {
	rec := InterviewResult{
		BaseModel: BaseModel{
			ID: view.ID,
		},
		TemplateName:     view.TemplateName,
		CandidateName:    view.CandidateName,
		Date:             view.Date,
		CompletedAt:      view.CompletedAt,
		Categories:       view.Categories,
		Questions:        view.Questions,
		TotalScore:       view.TotalScore,
		MaxPossibleScore: view.MaxPossibleScore,
		Summary:          view.Summary,
	}
	if view.RecruitmentRunID != "" {
		runID := view.RecruitmentRunID
		rec.RecruitmentRunID = &runID
	}
	return rec
}

type ResultFilter struct {
	RecruitmentRunID string
}
