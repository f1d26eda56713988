package notify

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sender интерфейс доставки события уведомления
type Sender interface {
	Send(ctx context.Context, event Event) error
}
