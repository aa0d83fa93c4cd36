package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64     // ID пользователя
	CafeID          int64     // ID кафе
	StationType     string    // Тип станции ("ps5", "pc", "vr", ...)
	Quantity        int       // Количество станций
	PlayerCount     int       // Игроков/геймпадов на станцию (ось тарифа)
	Date            time.Time // Дата бронирования (без времени)
	StartTime       string    // Время начала ("6:00 pm")
	DurationMinutes int       // Длительность в минутах
	CustomerName    string    // Имя клиента для дашборда
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64  // ID созданного бронирования
	UserID          int64  // ID пользователя
	CafeID          int64  // ID кафе
	StationType     string // Тип станции
	Quantity        int    // Количество станций
	PlayerCount     int    // Игроков на станцию
	Date            string // "2026-08-28"
	StartTime       string // "6:00 pm"
	EndTime         string // "7:30 pm", может перейти за полночь
	DurationMinutes int    // Длительность в минутах
	Status          string // Статус бронирования

	CustomerName string  // Имя клиента
	UnitPrice    int     // Цена за станцию
	TotalPrice   int     // Цена за все станции
	PriceFlagged bool    // Тариф не настроен, цена 0 - нужна ручная проверка
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
