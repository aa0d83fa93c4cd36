package get_live_status

import "errors"

var (
	// ErrCafeNotFound возвращается, когда кафе не настроено
	ErrCafeNotFound = errors.New("get_live_status: cafe not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_live_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_live_status: internal error")
)
