package cafetable

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("cafetable.repository: table not found")

	// ErrTableAlreadyExists возвращается при попытке создать стол с занятым ID
	ErrTableAlreadyExists = errors.New("cafetable.repository: table already exists")

	// ErrTableInUse возвращается при удалении стола, на который ссылаются брони
	ErrTableInUse = errors.New("cafetable.repository: table is referenced by reservations")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cafetable.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cafetable.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cafetable.repository: failed to scan row")
)
