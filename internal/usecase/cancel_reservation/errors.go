package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронь не найдена
	// или контакт не совпадает с контактом брони
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("cancel_reservation: reservation is already cancelled")

	// ErrStoreConflict возвращается, когда сериализуемая транзакция не прошла после повторов
	ErrStoreConflict = errors.New("cancel_reservation: storage conflict, please retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
