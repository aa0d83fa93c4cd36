package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrCafeNotFound возвращается, когда кафе не настроено
	ErrCafeNotFound = errors.New("create_booking: cafe not found")

	// ErrStationNotOffered возвращается, когда у кафе нет станций этого типа
	ErrStationNotOffered = errors.New("create_booking: station type not offered by this cafe")

	// ErrInvalidTime возвращается при нераспознанном времени начала
	ErrInvalidTime = errors.New("create_booking: invalid start time")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за часы работы
	ErrOutsideWorkingHours = errors.New("create_booking: outside working hours")

	// ErrCapacityExceeded возвращается, когда станций на интервал не хватает
	ErrCapacityExceeded = errors.New("create_booking: not enough stations available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// так и не прошла из-за параллельных бронирований
	ErrConcurrentConflict = errors.New("create_booking: concurrent booking conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityError уточняет отказ по вместимости: сколько станций
// свободно на запрошенном интервале и ближайшее время, когда запрос
// поместился бы целиком (nil, если до закрытия такого времени нет).
type CapacityError struct {
	Available     int
	NextAvailable *string // "7:00 pm"
}

func (e *CapacityError) Error() string {
	if e.NextAvailable != nil {
		return fmt.Sprintf("%v: %d available, next fit at %s", ErrCapacityExceeded, e.Available, *e.NextAvailable)
	}
	return fmt.Sprintf("%v: %d available, no fit before close", ErrCapacityExceeded, e.Available)
}

// Unwrap позволяет errors.Is(err, ErrCapacityExceeded)
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
