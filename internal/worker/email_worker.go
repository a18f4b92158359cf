package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oficinapro/workshop-api/internal/service/mailer"
	"github.com/oficinapro/workshop-api/internal/service/queue"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

// EmailWorker drains the email queue and sends the actual mail. The API
// only ever enqueues; a slow or failing mail provider never blocks a
// request.
type EmailWorker struct {
	sqsService   *queue.SQSService
	mailer       mailer.Mailer
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewEmailWorker(
	sqsService *queue.SQSService,
	mailer mailer.Mailer,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *EmailWorker {
	return &EmailWorker{
		sqsService:   sqsService,
		mailer:       mailer,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *EmailWorker) Start() {
	w.logger.Info("Starting email workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *EmailWorker) Stop() {
	w.logger.Info("Stopping email workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All email workers stopped")
}

func (w *EmailWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Email worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Email worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Email worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *EmailWorker) processMessages(ctx context.Context) error {
	messages, err := w.sqsService.ReceiveMessages(ctx, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.sendEmail(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to send %s email for order %s: %v", msg.Message.Type, msg.Message.OrderID, err)
			continue
		}

		// Only delete the message if sending was successful
		if err := w.sqsService.DeleteMessage(ctx, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *EmailWorker) sendEmail(ctx context.Context, msg queue.Message) error {
	if msg.Recipient == "" {
		w.logger.Warnf("Skipping %s email for order %s, no recipient", msg.Type, msg.OrderID)
		return nil
	}

	subject, body := renderEmail(msg)
	return w.mailer.Send(ctx, msg.Recipient, subject, body)
}

func renderEmail(msg queue.Message) (subject, body string) {
	switch msg.Type {
	case queue.MessageTypeQuoteCreated:
		subject = fmt.Sprintf("Orçamento do veículo %s - %s", msg.Plate, msg.TenantName)
		body = fmt.Sprintf(
			"Olá %s,\n\nSeu orçamento no valor de R$ %.2f está pronto.\nAcesse para aprovar: %s\n\n%s",
			msg.ClientName, msg.Total, msg.PortalURL, msg.TenantName)
	case queue.MessageTypeOrderApproved:
		subject = fmt.Sprintf("Orçamento aprovado - veículo %s", msg.Plate)
		body = fmt.Sprintf(
			"O cliente %s aprovou o orçamento de R$ %.2f do veículo %s.",
			msg.ClientName, msg.Total, msg.Plate)
	case queue.MessageTypeOrderFinished:
		subject = fmt.Sprintf("Serviço concluído - veículo %s", msg.Plate)
		body = fmt.Sprintf(
			"Olá %s,\n\nO serviço do veículo %s foi concluído. Valor total: R$ %.2f.\n\n%s",
			msg.ClientName, msg.Plate, msg.Total, msg.TenantName)
	default:
		subject = fmt.Sprintf("Atualização da ordem de serviço %s", msg.OrderID)
		body = fmt.Sprintf("A ordem de serviço do veículo %s foi atualizada.", msg.Plate)
	}
	return subject, body
}
