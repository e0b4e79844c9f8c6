package db

import (
	dbmodels "interview-scorer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(db *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := db.AutoMigrate(&dbmodels.InterviewTemplate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewTemplate")
	}
	if err := db.AutoMigrate(&dbmodels.InterviewResult{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewResult")
	}
	if err := db.AutoMigrate(&dbmodels.RecruitmentRun{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentRun")
	}
	if err := db.AutoMigrate(&dbmodels.AppSettings{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AppSettings")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
