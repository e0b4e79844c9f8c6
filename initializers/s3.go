package initializers

import (
	"context"
	"time"

	"interview-scorer-backend/config"
	s3client "interview-scorer-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if !*config.Conf.S3.Enabled {
		log.Info("S3 хранилище выключено")
		return
	}
	client, err := s3client.NewClient(s3client.Params{
		Endpoint:        config.Conf.S3.Endpoint,
		AccessKeyID:     config.Conf.S3.AccessKeyID,
		SecretAccessKey: config.Conf.S3.SecretAccessKey,
		BucketName:      config.Conf.S3.BucketName,
		UseSSL:          *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.MakeBucket(checkCtx); err != nil {
		log.WithError(err).Error("S3 соединение не удалось - бакет недоступен")
	}

	s3client.Instance = client
	log.Info("S3 клиент успешно инициализирован")
}
