package main

import (
	"os"

	"interview-scorer-backend/config"
	"interview-scorer-backend/db"
	backuphandler "interview-scorer-backend/lib/backup"
	xlsexport "interview-scorer-backend/lib/export/xls"
	importhandler "interview-scorer-backend/lib/importer"
	resulthandler "interview-scorer-backend/lib/result"
	runhandler "interview-scorer-backend/lib/run"
	settingshandler "interview-scorer-backend/lib/settings"
	statisticshandler "interview-scorer-backend/lib/statistics"
	templatehandler "interview-scorer-backend/lib/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type services struct {
	templates  templatehandler.Provider
	results    resulthandler.Provider
	settings   settingshandler.Provider
	runs       runhandler.Provider
	backup     backuphandler.Provider
	importer   importhandler.Provider
	statistics statisticshandler.Provider
}

// openServices подключается к той же БД, что и сервер, почта и S3 не используются
func openServices() (*services, error) {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	config.InitConfig()
	DB, err := db.Open(db.ConnectParams{
		Driver:     config.Conf.Database.Driver,
		Host:       config.Conf.Database.Host,
		Port:       config.Conf.Database.Port,
		Name:       config.Conf.Database.Name,
		User:       config.Conf.Database.User,
		Password:   config.Conf.Database.Password,
		SqlitePath: config.Conf.Database.SqlitePath,
		DebugMode:  *config.Conf.Database.DebugMode,
		Migrate:    *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подключения к БД")
	}
	s := &services{}
	s.settings = settingshandler.New(DB)
	s.templates = templatehandler.New(DB, s.settings)
	s.results = resulthandler.New(DB, s.templates, s.settings, nil)
	s.runs = runhandler.New(DB)
	s.backup = backuphandler.New(DB, s.settings, nil, config.Conf.Backup.Prefix)
	s.importer = importhandler.New(s.templates, s.results, s.settings, s.runs, s.backup)
	xlsexport.NewHandler()
	s.statistics = statisticshandler.New(s.results, xlsexport.Instance)
	return s, nil
}

// writeOutput пишет в файл path, либо в stdout если path пустой
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "ошибка записи файла %s", path)
	}
	return nil
}
