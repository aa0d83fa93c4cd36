package timers

import "errors"

var (
	// ErrTimerNotFound возвращается, когда таймер не найден
	ErrTimerNotFound = errors.New("timer not found")

	// ErrTimerAlreadyStopped возвращается при повторной остановке таймера
	ErrTimerAlreadyStopped = errors.New("timer already stopped")

	// ErrCafeNotFound возвращается, когда кафе не настроено
	ErrCafeNotFound = errors.New("cafe not found")

	// ErrMemberNotFound возвращается, когда член клуба не найден
	ErrMemberNotFound = errors.New("member not found")

	// ErrMembershipInactive возвращается, когда членство приостановлено
	ErrMembershipInactive = errors.New("membership is inactive")

	// ErrUnitOutOfRange возвращается, когда номер станции больше парка кафе
	ErrUnitOutOfRange = errors.New("unit number out of range")

	// ErrUnitOccupied возвращается, когда станция занята другим таймером
	ErrUnitOccupied = errors.New("unit is occupied by another timer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
