package notify

import "context"

// LogSender доставляет уведомления записью в лог сервиса.
// Режим по умолчанию: внешних каналов доставки не требует.
type LogSender struct {
	log Logger
}

// NewLogSender создает лог-отправителя уведомлений
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send пишет уведомление в лог
func (s *LogSender) Send(_ context.Context, event Event) error {
	s.log.Info("Notify: [%s] to %s: %s", event.Kind, event.Contact, event.Message)
	return nil
}
