package capacity

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded возвращается, когда запрошенное количество
	// станций не помещается в свободную вместимость. Ожидаемая и
	// восстановимая ошибка: всегда сопровождается количеством
	// оставшихся станций или альтернативным временем от сканера.
	ErrCapacityExceeded = errors.New("capacity: not enough free units")

	// ErrNoAvailabilityToday возвращается, когда сканер дошел до конца
	// рабочего дня, не найдя подходящего времени
	ErrNoAvailabilityToday = errors.New("capacity: no availability before closing")
)

// CapacityError отказ проверки вместимости с количеством станций,
// оставшихся свободными на интервале кандидата
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v (available: %d)", ErrCapacityExceeded, e.Available)
}

// Unwrap позволяет errors.Is(err, ErrCapacityExceeded)
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
