package get_availability

import "errors"

var (
	// ErrCafeNotFound возвращается, когда кафе не настроено
	ErrCafeNotFound = errors.New("get_availability: cafe not found")

	// ErrStationNotOffered возвращается, когда у кафе нет станций этого типа
	ErrStationNotOffered = errors.New("get_availability: station type not offered by this cafe")

	// ErrInvalidTime возвращается при нераспознанном времени начала
	ErrInvalidTime = errors.New("get_availability: invalid start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
