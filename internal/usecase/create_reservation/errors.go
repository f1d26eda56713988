package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при дате брони в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrWindowOutOfDay возвращается, когда окно брони не помещается в день
	ErrWindowOutOfDay = errors.New("create_reservation: reservation window does not fit within the day")

	// ErrNoTablesAvailable возвращается при политике reject, когда свободного стола нет
	ErrNoTablesAvailable = errors.New("create_reservation: no tables available for this window")

	// ErrStoreConflict возвращается, когда сериализуемая транзакция не прошла после повторов
	ErrStoreConflict = errors.New("create_reservation: storage conflict, please retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
