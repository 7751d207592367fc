package notify

import "github.com/amintouch/ledger-api/pkg/logger"

// LogMailer "sends" mail by logging the full payload. It stands in for a real
// transactional-mail provider, which is an external collaborator here.
type LogMailer struct {
	log  *logger.Logger
	from string
}

// NewLogMailer builds the mailer.
func NewLogMailer(log *logger.Logger, from string) *LogMailer {
	return &LogMailer{log: log, from: from}
}

// Send logs the would-be email and always succeeds.
func (m *LogMailer) Send(to, subject, body string) error {
	m.log.Info().
		Str("to", to).
		Str("from", m.from).
		Str("subject", subject).
		Str("body", body).
		Msg("notification mail (simulated delivery)")
	return nil
}
