package dbmodels

import (
	"database/sql/driver"

	templateapimodels "interview-scorer-backend/models/api/template"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type InterviewTemplate struct {
	BaseModel
	Name       string             `gorm:"type:varchar(255)"`
	Categories TemplateCategories `gorm:"not null"`
	Questions  TemplateQuestions  `gorm:"not null"`
}

type TemplateCategories []templateapimodels.Category

func (j TemplateCategories) Value() (driver.Value, error) {
	if j == nil {
		j = TemplateCategories{}
	}
	return jsonValue(j)
}

func (j *TemplateCategories) Scan(value interface{}) error {
	return jsonScan(value, j)
}

func (TemplateCategories) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBType(db)
}

type TemplateQuestions []templateapimodels.Question

func (j TemplateQuestions) Value() (driver.Value, error) {
	if j == nil {
		j = TemplateQuestions{}
	}
	return jsonValue(j)
}

func (j *TemplateQuestions) Scan(value interface{}) error {
	return jsonScan(value, j)
}

func (TemplateQuestions) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBType(db)
}

func (r InterviewTemplate) ToModel() templateapimodels.TemplateView {
	view := templateapimodels.TemplateView{
		ID:         r.ID,
		Name:       r.Name,
		CreatedAt:  r.CreatedAt,
		Categories: append([]templateapimodels.Category{}, r.Categories...),
		Questions:  append([]templateapimodels.Question{}, r.Questions...),
	}
	return view.Copy()
}

func NewInterviewTemplate(view templateapimodels.TemplateView) InterviewTemplate {
	view = view.Copy()
	rec := InterviewTemplate{
		BaseModel: BaseModel{
			ID:        view.ID,
			CreatedAt: view.CreatedAt,
		},
		Name:       view.Name,
		Categories: view.Categories,
		Questions:  view.Questions,
	}
	return rec
}
