package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
)

// Pool пул воркеров для асинхронной доставки уведомлений.
// Очередь ограничена: при переполнении событие отбрасывается с записью в лог,
// запрос гостя из-за уведомлений не блокируется.
type Pool struct {
	workers int
	jobs    chan Event
	sender  Sender
	log     Logger
	wg      sync.WaitGroup
}

// NewPool создает пул воркеров доставки уведомлений
func NewPool(workers, queueSize int, sender Sender, log Logger) *Pool {
	return &Pool{
		workers: workers,
		jobs:    make(chan Event, queueSize),
		sender:  sender,
		log:     log,
	}
}

// Start запускает воркеров. Воркеры живут до отмены контекста.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.log.Info("Notify: started %d workers, queue size %d", p.workers, cap(p.jobs))
}

// Wait блокируется до завершения всех воркеров
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case event := <-p.jobs:
			if err := p.sender.Send(ctx, event); err != nil {
				p.log.Error("Notify: worker %d failed to deliver event %s (%s): %v", id, event.ID, event.Kind, err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Dispatch ставит событие в очередь доставки без блокировки
func (p *Pool) Dispatch(event Event) {
	select {
	case p.jobs <- event:
	default:
		p.log.Warn("Notify: queue full, dropping event %s (%s)", event.ID, event.Kind)
	}
}

// ReservationPending уведомляет гостя, что бронь принята в лист ожидания
func (p *Pool) ReservationPending(reservation *domain.Reservation) {
	message := fmt.Sprintf(
		"Your reservation #%d for %s at %s is pending, no table is free yet.",
		reservation.ID,
		reservation.Date.Format(domain.DateFormat),
		reservation.StartTime,
	)
	p.Dispatch(newEvent(KindReservationPending, reservation.ID, reservation.Contact, message))
}

// ReservationConfirmed уведомляет гостя о подтверждении брони и назначенном столе
func (p *Pool) ReservationConfirmed(reservation *domain.Reservation, tableName string) {
	message := fmt.Sprintf(
		"Your reservation #%d for %s at %s is confirmed, table %s.",
		reservation.ID,
		reservation.Date.Format(domain.DateFormat),
		reservation.StartTime,
		tableName,
	)
	p.Dispatch(newEvent(KindReservationConfirmed, reservation.ID, reservation.Contact, message))
}

// ReservationCancelled уведомляет гостя об отмене брони
func (p *Pool) ReservationCancelled(reservation *domain.Reservation) {
	message := fmt.Sprintf(
		"Your reservation #%d for %s at %s is cancelled.",
		reservation.ID,
		reservation.Date.Format(domain.DateFormat),
		reservation.StartTime,
	)
	p.Dispatch(newEvent(KindReservationCancelled, reservation.ID, reservation.Contact, message))
}
