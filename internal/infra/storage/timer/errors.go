package timer

import "errors"

var (
	// ErrTimerNotFound возвращается, когда таймер не найден
	ErrTimerNotFound = errors.New("timer.repository: timer not found")

	// ErrTimerAlreadyStopped возвращается при повторной остановке таймера
	ErrTimerAlreadyStopped = errors.New("timer.repository: timer already stopped")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timer.repository: failed to scan row")
)
