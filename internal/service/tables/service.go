package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/cafetable"
	"github.com/m04kA/CTRS-ReservationService/internal/service/tables/models"
)

// Service сервис для работы со столами зала
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// List получает все столы зала
func (s *Service) List(ctx context.Context) (*models.TableListResponse, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableList(tables), nil
}

// Create создает новый стол
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: creating table id=%s capacity=%d", req.ID, req.Capacity)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request for table id=%s: %v", req.ID, err)
		return nil, err
	}

	table, err := s.tableRepo.Create(ctx, req.ToDomainTable())
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableAlreadyExists) {
			s.logger.Warn("Create: table id=%s already exists", req.ID)
			return nil, ErrTableAlreadyExists
		}
		s.logger.Error("Create: repository error for table id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created table id=%s", table.ID)
	return models.FromDomainTable(table), nil
}

// Delete удаляет стол
// Стол, на который ссылаются брони, удалить нельзя
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting table id=%s", id)

	if id == "" {
		s.logger.Warn("Delete: empty table id")
		return fmt.Errorf("%w: table id is required", ErrInvalidInput)
	}

	if err := s.tableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Delete: table id=%s not found", id)
			return ErrTableNotFound
		}
		if errors.Is(err, tableRepo.ErrTableInUse) {
			s.logger.Warn("Delete: table id=%s is referenced by reservations", id)
			return ErrTableInUse
		}
		s.logger.Error("Delete: repository error for table id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted table id=%s", id)
	return nil
}

func validateCreateRequest(req *models.CreateTableRequest) error {
	if req.ID == "" {
		return fmt.Errorf("%w: table id is required", ErrInvalidInput)
	}
	if len(req.ID) > domain.MaxTableIDLength {
		return fmt.Errorf("%w: table id exceeds %d characters", ErrInvalidInput, domain.MaxTableIDLength)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: table name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxTableNameLength {
		return fmt.Errorf("%w: table name exceeds %d characters", ErrInvalidInput, domain.MaxTableNameLength)
	}
	if req.Capacity < domain.MinPartySize || req.Capacity > domain.MaxPartySize {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}
	return nil
}
