package models

import (
	"errors"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date format")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetCafeReservationsRequest запрос на получение бронирований кафе на дату
type GetCafeReservationsRequest struct {
	CafeID          int64   `json:"cafeId"`
	Date            string  `json:"date"`                      // "2026-08-28"
	StationType     *string `json:"stationType,omitempty"`     // Фильтр по типу станции (опционально)
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCafeReservationsRequest) ToDomainFilter() (domain.DayFilter, error) {
	filter := domain.DayFilter{
		CafeID:          r.CafeID,
		IncludeInactive: r.IncludeInactive,
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return filter, ErrInvalidDate
	}
	filter.Date = date

	if r.StationType != nil {
		st, err := domain.ParseStationType(*r.StationType)
		if err != nil {
			return filter, err
		}
		filter.StationType = &st
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64  `json:"id"`
	CafeID          int64  `json:"cafeId"`
	UserID          int64  `json:"userId"`
	StationType     string `json:"stationType"`
	Quantity        int    `json:"quantity"`
	PlayerCount     int    `json:"playerCount"`
	Date            string `json:"date"`      // "2026-08-28"
	StartTime       string `json:"startTime"` // "6:00 pm"
	EndTime         string `json:"endTime"`   // "7:30 pm", может перейти за полночь
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	CustomerName string  `json:"customerName"`
	UnitPrice    int     `json:"unitPrice"`
	TotalPrice   int     `json:"totalPrice"`
	PriceFlagged bool    `json:"priceFlagged"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:              r.ID,
		CafeID:          r.CafeID,
		UserID:          r.UserID,
		StationType:     string(r.StationType),
		Quantity:        r.Quantity,
		PlayerCount:     r.PlayerCount,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartMinute.Clock(),
		EndTime:         r.EndMinute().Clock(),
		DurationMinutes: r.DurationMinutes,
		Status:          string(r.Status),
		CustomerName:    r.CustomerName,
		UnitPrice:       r.UnitPrice,
		TotalPrice:      r.TotalPrice,
		PriceFlagged:    r.PriceFlagged,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	resp.CancellationReason = r.CancellationReason
	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	list := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		list = append(list, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: list}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusInProgress,
		domain.StatusCompleted, domain.StatusCancelled:
		return domain.ReservationStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
