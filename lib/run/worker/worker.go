package runstatusworker

import (
	"context"
	"time"

	runhandler "interview-scorer-backend/lib/run"
	baseworker "interview-scorer-backend/lib/utils/base-worker"
	"interview-scorer-backend/lib/utils/helpers"
)

// StartWorker завершение наборов с прошедшей датой окончания
func StartWorker(ctx context.Context, interval time.Duration) {
	i := &impl{
		BaseImpl:    *baseworker.NewInstance("RunStatusWorker", 15*time.Second, interval),
		runProvider: runhandler.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	runProvider runhandler.Provider
}

func (i impl) handle(ctx context.Context) {
	if helpers.IsContextDone(ctx) {
		return
	}
	logger := i.GetLogger()
	count, err := i.runProvider.CompleteEnded(time.Now())
	if err != nil {
		logger.WithError(err).Error("Ошибка перевода наборов в COMPLETED")
		return
	}
	if count != 0 {
		logger.WithField("count", count).Info("наборы переведены в COMPLETED")
	}
}
