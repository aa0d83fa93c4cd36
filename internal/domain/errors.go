package domain

import "errors"

var (
	// ErrUnknownStationType возвращается, когда тип станции не входит в
	// закрытый набор и не покрывается таблицей алиасов
	ErrUnknownStationType = errors.New("domain: unknown station type")

	// ErrInvalidConfig возвращается при невозможной конфигурации кафе
	// (отрицательная вместимость, некорректные часы работы)
	ErrInvalidConfig = errors.New("domain: invalid cafe config")
)
