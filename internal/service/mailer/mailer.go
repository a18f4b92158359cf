package mailer

import (
	"context"

	"github.com/oficinapro/workshop-api/pkg/logger"
)

// Mailer sends transactional email. The email worker is the only caller;
// the API never sends mail inline.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes mail to the log instead of sending it. Used in local
// development where SES is not reachable.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer(logger *logger.Logger) *LogMailer {
	return &LogMailer{
		logger: logger,
	}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Infof("Email (log only) to=%s subject=%q body=%q", to, subject, body)
	return nil
}
