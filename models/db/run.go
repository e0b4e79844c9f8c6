package dbmodels

import (
	"interview-scorer-backend/models"
	runapimodels "interview-scorer-backend/models/api/run"
)

type RecruitmentRun struct {
	BaseModel
	Name        string           `gorm:"type:varchar(255)"`
	Description string           `gorm:"type:text"`
	StartDate   string           `gorm:"type:varchar(10);index"` // YYYY-MM-DD
	EndDate     string           `gorm:"type:varchar(10)"`
	Status      models.RunStatus `gorm:"type:varchar(20);index"`
}

func (r RecruitmentRun) ToModel() runapimodels.RunView {
	return runapimodels.RunView{
		ID: r.ID,
		RunData: runapimodels.RunData{
			Name:        r.Name,
			Description: r.Description,
			StartDate:   r.StartDate,
			EndDate:     r.EndDate,
			Status:      r.Status,
		},
	}
}

func NewRecruitmentRun(view runapimodels.RunView) RecruitmentRun {
	return RecruitmentRun{
		BaseModel: BaseModel{
			ID: view.ID,
		},
		Name:        view.Name,
		Description: view.Description,
		StartDate:   view.StartDate,
		EndDate:     view.EndDate,
		Status:      view.Status,
	}
}
