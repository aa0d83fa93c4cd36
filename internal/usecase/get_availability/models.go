package get_availability

import "time"

// Request модель запроса проверки доступности
type Request struct {
	CafeID          int64     // ID кафе
	StationType     string    // Тип станции
	Date            time.Time // Дата
	StartTime       string    // Время начала ("6:30 pm")
	DurationMinutes int       // Длительность в минутах
	Quantity        int       // Количество станций
	PlayerCount     int       // Игроков на станцию, для расчета цены
}

// Response модель ответа проверки доступности
type Response struct {
	Available     bool    // Поместится ли запрос на это время
	Remaining     int     // Свободных станций на запрошенном интервале
	NextAvailable *string // Ближайшее подходящее время ("7:00 pm"), nil если нет до закрытия

	// Предварительная цена за запрошенный интервал
	UnitPrice    int  // Цена за станцию
	TotalPrice   int  // Цена за все станции
	PriceFlagged bool // Тариф не настроен, цена 0
}
