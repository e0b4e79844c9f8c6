package initializers

import (
	"context"
	"time"

	"interview-scorer-backend/config"
	"interview-scorer-backend/fiberlog"
	backuphandler "interview-scorer-backend/lib/backup"
	backupworker "interview-scorer-backend/lib/backup/worker"
	xlsexport "interview-scorer-backend/lib/export/xls"
	importhandler "interview-scorer-backend/lib/importer"
	resulthandler "interview-scorer-backend/lib/result"
	runhandler "interview-scorer-backend/lib/run"
	runstatusworker "interview-scorer-backend/lib/run/worker"
	settingshandler "interview-scorer-backend/lib/settings"
	statisticshandler "interview-scorer-backend/lib/statistics"
	templatehandler "interview-scorer-backend/lib/template"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	settingshandler.NewHandler()
	templatehandler.NewHandler()
	resulthandler.NewHandler()
	runhandler.NewHandler()
	xlsexport.NewHandler()
	statisticshandler.NewHandler()
	backuphandler.NewHandler(config.Conf.Backup.Prefix)
	importhandler.NewHandler()
	if *config.Conf.App.SeedDemo {
		if err := templatehandler.Instance.SeedDemo(); err != nil {
			log.WithError(err).Error("Ошибка создания демонстрационного шаблона")
		}
	}
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача завершения наборов с прошедшей датой окончания
	runstatusworker.StartWorker(ctx, time.Duration(config.Conf.Runs.StatusCheckMinutes)*time.Minute)

	// Задача резервного копирования в S3
	if *config.Conf.Backup.Enabled {
		if !*config.Conf.S3.Enabled {
			log.Warn("Резервное копирование по расписанию не запущено: хранилище S3 выключено")
			return
		}
		if err := backupworker.StartWorker(ctx, config.Conf.Backup.Schedule); err != nil {
			panic(err.Error())
		}
	}
}
