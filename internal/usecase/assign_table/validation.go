package assign_table

import (
	"fmt"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}
	if req.TableID == "" {
		return fmt.Errorf("%w: table id is required", ErrInvalidInput)
	}
	if len(req.TableID) > domain.MaxTableIDLength {
		return fmt.Errorf("%w: table id is too long (max %d characters)", ErrInvalidInput, domain.MaxTableIDLength)
	}
	return nil
}
