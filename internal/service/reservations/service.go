package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CTRS-ReservationService/internal/service/reservations/models"
)

// Service сервис чтения броней
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetByContact получает все брони гостя по контакту, включая отменённые
func (s *Service) GetByContact(ctx context.Context, contact string) (*models.ReservationListResponse, error) {
	if contact == "" {
		s.logger.Warn("GetByContact: empty contact")
		return nil, fmt.Errorf("%w: contact is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByContact(ctx, contact)
	if err != nil {
		s.logger.Error("GetByContact: repository error for contact=%s: %v", contact, err)
		return nil, fmt.Errorf("%w: GetByContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByContact: fetched %d reservations for contact=%s", len(reservations), contact)
	return models.FromDomainReservationList(reservations), nil
}

// List получает брони с гибкой фильтрацией по дате, статусу и признаку отмены
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}
