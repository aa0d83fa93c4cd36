package cafeconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация кафе не найдена
	ErrConfigNotFound = errors.New("cafeconfig.repository: config not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("cafeconfig.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cafeconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cafeconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cafeconfig.repository: failed to scan row")
)
