package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/internal/scheduling"
	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

// Смещения в минутах, на которых ищутся альтернативные времена,
// когда запрошенное окно полностью занято
var alternativeOffsets = [...]int{-60, -30, 30, 60}

// UseCase use case для проверки доступности столов
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	durationMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	durationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		durationMinutes: durationMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case проверки доступности
// Чтение без транзакции: ответ - моментальный снимок, гарантию даёт
// только создание брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, time=%s, party=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно брони должно помещаться в день
	window, err := scheduling.NewWindow(req.StartTime, uc.durationMinutes)
	if err != nil {
		uc.logger.Warn("CheckAvailability: window validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s + %d min", ErrWindowOutOfDay, req.StartTime, uc.durationMinutes)
	}

	// 3. Получаем все столы зала
	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// 4. Получаем активные брони на дату
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Фильтруем столы по вместимости и свободности окна
	candidates, err := scheduling.AvailableTables(tables, reservations, req.StartTime, uc.durationMinutes, req.PartySize)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to compute available tables: %v", err)
		return nil, fmt.Errorf("%w: failed to compute available tables: %v", ErrInternal, err)
	}

	response := &Response{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   window.End,
		PartySize: req.PartySize,
		Available: make([]TableInfo, 0, len(candidates)),
	}
	for _, table := range candidates {
		response.Available = append(response.Available, TableInfo{
			ID:       table.ID,
			Name:     table.Name,
			Capacity: table.Capacity,
		})
	}

	// 6. Подсказываем стол той же эвристикой, что использует создание брони
	if table := scheduling.SelectTable(candidates, req.PartySize); table != nil {
		response.SuggestedTableID = &table.ID
	}

	// 7. Окно занято: ищем соседние времена со свободными столами
	if len(candidates) == 0 {
		response.Alternatives = uc.alternatives(tables, reservations, req.StartTime, req.PartySize)
	}

	uc.logger.Info("CheckAvailability: date=%s, time=%s, party=%d: %d tables available",
		req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize, len(response.Available))

	return response, nil
}

// alternatives проверяет тот же фильтр на соседних смещениях и возвращает
// времена с непустым результатом. Смещения, выводящие окно за пределы
// суток, пропускаются
func (uc *UseCase) alternatives(
	tables []*domain.Table,
	reservations []*domain.Reservation,
	start types.TimeString,
	partySize int,
) []Alternative {
	found := make([]Alternative, 0, len(alternativeOffsets))

	for _, offset := range alternativeOffsets {
		altStart, err := start.AddMinutes(offset)
		if err != nil {
			continue
		}

		altWindow, err := scheduling.NewWindow(altStart, uc.durationMinutes)
		if err != nil {
			continue
		}

		candidates, err := scheduling.AvailableTables(tables, reservations, altStart, uc.durationMinutes, partySize)
		if err != nil || len(candidates) == 0 {
			continue
		}

		found = append(found, Alternative{
			StartTime:       altStart,
			EndTime:         altWindow.End,
			TablesAvailable: len(candidates),
		})
	}

	return found
}
