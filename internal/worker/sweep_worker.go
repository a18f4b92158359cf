package worker

import (
	"context"
	"sync"
	"time"

	"github.com/oficinapro/workshop-api/internal/service"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

// SweepWorker runs the daily subscription sweep: lapsed TRIAL/ATIVA rows
// flip to VENCIDA at midnight UTC. The sweep is a safety net, not the
// enforcement point; admission control checks the end date directly, so a
// missed run delays bookkeeping but never extends access.
type SweepWorker struct {
	subscriptions *service.SubscriptionService
	logger        *logger.Logger
	shutdownChan  chan struct{}
	waitGroup     sync.WaitGroup
	now           func() time.Time
}

func NewSweepWorker(subscriptions *service.SubscriptionService, logger *logger.Logger) *SweepWorker {
	return &SweepWorker{
		subscriptions: subscriptions,
		logger:        logger,
		shutdownChan:  make(chan struct{}),
		now:           time.Now,
	}
}

func (w *SweepWorker) Start() {
	w.logger.Info("Starting subscription sweep worker...")

	w.waitGroup.Add(1)
	go w.run()
}

func (w *SweepWorker) Stop() {
	w.logger.Info("Stopping subscription sweep worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Subscription sweep worker stopped")
}

func (w *SweepWorker) run() {
	defer w.waitGroup.Done()

	// Run once at startup to catch anything missed while the worker was
	// down, then align to midnight UTC.
	w.sweep()

	for {
		timer := time.NewTimer(w.untilNextRun())

		select {
		case <-w.shutdownChan:
			timer.Stop()
			return
		case <-timer.C:
			w.sweep()
		}
	}
}

func (w *SweepWorker) untilNextRun() time.Duration {
	now := w.now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Sub(now)
}

func (w *SweepWorker) sweep() {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf("Subscription sweep panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := w.subscriptions.SweepExpired(ctx)
	if err != nil {
		w.logger.Errorf("Subscription sweep failed: %v", err)
		return
	}

	w.logger.Infof("Subscription sweep finished, %d row(s) expired", count)
}
