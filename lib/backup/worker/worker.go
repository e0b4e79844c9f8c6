package backupworker

import (
	"context"
	"time"

	backuphandler "interview-scorer-backend/lib/backup"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const uploadTimeout = 5 * time.Minute

// StartWorker выгрузка резервной копии в S3 по расписанию schedule (cron, 5 полей)
func StartWorker(ctx context.Context, schedule string) error {
	logger := log.WithField("worker_name", "BackupWorker")
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		upload(ctx, logger)
	})
	if err != nil {
		return errors.Wrapf(err, "некорректное расписание резервного копирования: %s", schedule)
	}
	c.Start()
	logger.WithField("schedule", schedule).Info("Задача запущена")
	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		logger.Info("Задача остановлена")
	}()
	return nil
}

func upload(ctx context.Context, logger *log.Entry) {
	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()
	object, err := backuphandler.Instance.Upload(uploadCtx)
	if err != nil {
		logger.WithError(err).Error("Ошибка выгрузки резервной копии по расписанию")
		return
	}
	logger.WithField("key", object.Key).Info("Резервная копия по расписанию выгружена")
}
