package backuphandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"interview-scorer-backend/db"
	"interview-scorer-backend/lib/interchange"
	resultstore "interview-scorer-backend/lib/result/store"
	runstore "interview-scorer-backend/lib/run/store"
	settingshandler "interview-scorer-backend/lib/settings"
	settingsstore "interview-scorer-backend/lib/settings/store"
	templatestore "interview-scorer-backend/lib/template/store"
	initchecker "interview-scorer-backend/lib/utils/init-checker"
	"interview-scorer-backend/lib/utils/lock"
	"interview-scorer-backend/models"
	backupapimodels "interview-scorer-backend/models/api/backup"
	resultapimodels "interview-scorer-backend/models/api/result"
	runapimodels "interview-scorer-backend/models/api/run"
	templateapimodels "interview-scorer-backend/models/api/template"
	dbmodels "interview-scorer-backend/models/db"
	s3client "interview-scorer-backend/s3"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	backupContentType = "application/x-yaml"
	backupLockKey     = "backup"
	backupLockWait    = 30 * time.Second
)

type Provider interface {
	Snapshot() (backupapimodels.Bundle, error)
	Restore(bundle backupapimodels.Bundle) (backupapimodels.RestoreSummary, error)
	Upload(ctx context.Context) (backupapimodels.ObjectView, error)
	List(ctx context.Context) ([]backupapimodels.ObjectView, error)
	RestoreObject(ctx context.Context, key string) (backupapimodels.RestoreSummary, error)
}

var Instance Provider

func NewHandler(prefix string) {
	Instance = New(db.DB, settingshandler.Instance, s3client.Instance, prefix)
}

// New storage может быть nil, тогда доступны только Snapshot и Restore
func New(DB *gorm.DB, settingsProvider settingshandler.Provider, storage s3client.Provider, prefix string) Provider {
	instance := impl{
		db:               DB,
		templateStore:    templatestore.NewInstance(DB),
		resultStore:      resultstore.NewInstance(DB),
		runStore:         runstore.NewInstance(DB),
		settingsStore:    settingsstore.NewInstance(DB),
		settingsProvider: settingsProvider,
		storage:          storage,
		prefix:           strings.Trim(prefix, "/"),
	}
	initchecker.CheckInit(
		"db", instance.db,
		"settingsProvider", instance.settingsProvider,
	)
	return instance
}

type impl struct {
	db               *gorm.DB
	templateStore    templatestore.Provider
	resultStore      resultstore.Provider
	runStore         runstore.Provider
	settingsStore    settingsstore.Provider
	settingsProvider settingshandler.Provider
	storage          s3client.Provider
	prefix           string
}

func (i impl) Snapshot() (backupapimodels.Bundle, error) {
	bundle := backupapimodels.Bundle{}
	templates, err := i.templateStore.List()
	if err != nil {
		return bundle, errors.Wrap(err, "ошибка получения шаблонов")
	}
	bundle.Templates = make([]templateapimodels.TemplateView, 0, len(templates))
	for _, rec := range templates {
		bundle.Templates = append(bundle.Templates, rec.ToModel())
	}

	results, err := i.resultStore.List(dbmodels.ResultFilter{})
	if err != nil {
		return bundle, errors.Wrap(err, "ошибка получения результатов")
	}
	bundle.Results = make([]resultapimodels.ResultView, 0, len(results))
	for _, rec := range results {
		bundle.Results = append(bundle.Results, rec.ToModel())
	}

	runs, err := i.runStore.List()
	if err != nil {
		return bundle, errors.Wrap(err, "ошибка получения наборов")
	}
	bundle.Runs = make([]runapimodels.RunView, 0, len(runs))
	for _, rec := range runs {
		bundle.Runs = append(bundle.Runs, rec.ToModel())
	}

	bundle.Settings, err = i.settingsProvider.Get()
	if err != nil {
		return bundle, err
	}
	return bundle, nil
}

// Restore заменяет все данные содержимым копии. Идентификаторы сохраняются, чтобы не терять связи результатов с наборами
func (i impl) Restore(bundle backupapimodels.Bundle) (backupapimodels.RestoreSummary, error) {
	if err := bundle.Settings.Validate(); err != nil {
		return backupapimodels.RestoreSummary{}, err
	}
	for _, tpl := range bundle.Templates {
		if err := tpl.Validate(); err != nil {
			return backupapimodels.RestoreSummary{}, err
		}
	}
	for idx := range bundle.Runs {
		if err := bundle.Runs[idx].RunData.Validate(); err != nil {
			return backupapimodels.RestoreSummary{}, err
		}
	}
	runIDs := make(map[string]struct{}, len(bundle.Runs))
	for _, run := range bundle.Runs {
		runIDs[run.ID] = struct{}{}
	}

	success, err := lock.WithDelay(context.Background(), backupLockKey, backupLockWait, func() error {
		return i.restore(bundle, runIDs)
	})
	if err != nil {
		log.WithError(err).Error("ошибка восстановления из резервной копии")
		return backupapimodels.RestoreSummary{}, err
	}
	if !success {
		return backupapimodels.RestoreSummary{}, models.NewValidationError("резервное копирование уже выполняется, повторите позже")
	}
	summary := backupapimodels.RestoreSummary{
		Templates: len(bundle.Templates),
		Results:   len(bundle.Results),
		Runs:      len(bundle.Runs),
	}
	log.
		WithField("templates", summary.Templates).
		WithField("results", summary.Results).
		WithField("runs", summary.Runs).
		Info("данные восстановлены из резервной копии")
	return summary, nil
}

func (i impl) restore(bundle backupapimodels.Bundle, runIDs map[string]struct{}) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		templateStore := i.templateStore.WithTx(tx)
		resultStore := i.resultStore.WithTx(tx)
		runStore := i.runStore.WithTx(tx)
		if err := resultStore.DeleteAll(); err != nil {
			return err
		}
		if err := runStore.DeleteAll(); err != nil {
			return err
		}
		if err := templateStore.DeleteAll(); err != nil {
			return err
		}
		for _, tpl := range bundle.Templates {
			if _, err := templateStore.Create(dbmodels.NewInterviewTemplate(tpl)); err != nil {
				return err
			}
		}
		for _, run := range bundle.Runs {
			if _, err := runStore.Create(dbmodels.NewRecruitmentRun(run)); err != nil {
				return err
			}
		}
		for _, result := range bundle.Results {
			if _, ok := runIDs[result.RecruitmentRunID]; !ok {
				result.RecruitmentRunID = ""
			}
			if _, err := resultStore.Create(dbmodels.NewInterviewResult(result)); err != nil {
				return err
			}
		}
		return i.settingsStore.WithTx(tx).Save(dbmodels.NewAppSettings(bundle.Settings))
	})
}

func (i impl) Upload(ctx context.Context) (backupapimodels.ObjectView, error) {
	if i.storage == nil {
		return backupapimodels.ObjectView{}, models.NewValidationError("хранилище S3 не настроено")
	}
	var data []byte
	success, err := lock.WithDelay(ctx, backupLockKey, backupLockWait, func() error {
		bundle, err := i.Snapshot()
		if err != nil {
			return err
		}
		data, err = interchange.Dump(bundle)
		return err
	})
	if err != nil {
		return backupapimodels.ObjectView{}, err
	}
	if !success {
		return backupapimodels.ObjectView{}, models.NewValidationError("резервное копирование уже выполняется, повторите позже")
	}
	now := time.Now()
	key := ObjectKey(i.prefix, now)
	if err = i.storage.PutObject(ctx, key, data, backupContentType); err != nil {
		log.WithField("key", key).WithError(err).Error("ошибка выгрузки резервной копии в S3")
		return backupapimodels.ObjectView{}, err
	}
	log.WithField("key", key).Info("резервная копия выгружена в S3")
	return backupapimodels.ObjectView{Key: key, Size: int64(len(data)), LastModified: now}, nil
}

func (i impl) List(ctx context.Context) ([]backupapimodels.ObjectView, error) {
	if i.storage == nil {
		return nil, models.NewValidationError("хранилище S3 не настроено")
	}
	return i.storage.ListObjects(ctx, i.prefix)
}

func (i impl) RestoreObject(ctx context.Context, key string) (backupapimodels.RestoreSummary, error) {
	if i.storage == nil {
		return backupapimodels.RestoreSummary{}, models.NewValidationError("хранилище S3 не настроено")
	}
	data, err := i.storage.GetObject(ctx, key)
	if err != nil {
		return backupapimodels.RestoreSummary{}, err
	}
	if data == nil {
		return backupapimodels.RestoreSummary{}, models.NewValidationError("резервная копия %s не найдена", key)
	}
	doc, err := interchange.Load(data)
	if err != nil {
		return backupapimodels.RestoreSummary{}, err
	}
	if doc.Kind != interchange.KindBackup {
		return backupapimodels.RestoreSummary{}, interchange.ImportError{Message: fmt.Sprintf("%s is not a backup file", key)}
	}
	return i.Restore(*doc.Backup)
}

// ObjectKey <prefix>/backup-YYYYMMDD-HHMMSS.yaml
func ObjectKey(prefix string, at time.Time) string {
	name := fmt.Sprintf("backup-%s.yaml", at.Format("20060102-150405"))
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
