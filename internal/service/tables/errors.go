package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrTableAlreadyExists возвращается при создании стола с занятым ID
	ErrTableAlreadyExists = errors.New("table already exists")

	// ErrTableInUse возвращается при удалении стола, на который есть брони
	ErrTableInUse = errors.New("table is referenced by reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
