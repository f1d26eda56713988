package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrDial возвращается при ошибке подключения к брокеру
	ErrDial = errors.New("notify: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("notify: failed to publish event")
)

// AMQPSender публикует события уведомлений в очередь RabbitMQ.
// Очередь объявляется durable, сообщения персистентные: события переживают
// перезапуск брокера. Соединение держится открытым; при ошибке публикации
// выполняется одна попытка переподключения.
type AMQPSender struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPSender подключается к брокеру и объявляет очередь
func NewAMQPSender(url, queue string) (*AMQPSender, error) {
	s := &AMQPSender{url: url, queue: queue}

	if err := s.connect(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *AMQPSender) connect() error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrDial, s.url, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: open channel: %v", ErrDial, err)
	}

	if _, err := ch.QueueDeclare(
		s.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("%w: declare queue %s: %v", ErrDial, s.queue, err)
	}

	s.conn = conn
	s.ch = ch

	return nil
}

// Send публикует событие в очередь в формате JSON
func (s *AMQPSender) Send(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event %s: %v", ErrPublish, event.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.publish(ctx, body); err != nil {
		// Соединение могло умереть: переподключаемся и пробуем ещё раз
		if rerr := s.reconnect(); rerr != nil {
			return fmt.Errorf("%w: event %s: %v", ErrPublish, event.ID, rerr)
		}
		if err := s.publish(ctx, body); err != nil {
			return fmt.Errorf("%w: event %s after reconnect: %v", ErrPublish, event.ID, err)
		}
	}

	return nil
}

func (s *AMQPSender) publish(ctx context.Context, body []byte) error {
	return s.ch.PublishWithContext(ctx,
		"",      // default exchange
		s.queue, // routing key = имя очереди
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func (s *AMQPSender) reconnect() error {
	s.close()
	return s.connect()
}

// Close закрывает канал и соединение с брокером
func (s *AMQPSender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.close()
}

func (s *AMQPSender) close() {
	if s.ch != nil {
		s.ch.Close()
		s.ch = nil
	}
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
}
