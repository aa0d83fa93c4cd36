package create_booking

import (
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
	createBooking "github.com/playgrid/PGC-StationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CafeID          int64   `json:"cafeId"`
	StationType     string  `json:"stationType"` // "ps5", "pc", "vr", ...
	Quantity        int     `json:"quantity"`
	PlayerCount     int     `json:"playerCount"`
	Date            string  `json:"date"`      // "2026-08-28"
	StartTime       string  `json:"startTime"` // "6:00 pm"
	DurationMinutes int     `json:"durationMinutes"`
	CustomerName    string  `json:"customerName"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	CafeID          int64   `json:"cafeId"`
	StationType     string  `json:"stationType"`
	Quantity        int     `json:"quantity"`
	PlayerCount     int     `json:"playerCount"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	UnitPrice       int     `json:"unitPrice"`
	TotalPrice      int     `json:"totalPrice"`
	PriceFlagged    bool    `json:"priceFlagged"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// CapacityConflictResponse тело ответа 409 при нехватке станций
type CapacityConflictResponse struct {
	Error         string  `json:"error"`
	Available     int     `json:"available"`
	NextAvailable *string `json:"nextAvailable,omitempty"` // "7:00 pm"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		CafeID:          r.CafeID,
		StationType:     r.StationType,
		Quantity:        r.Quantity,
		PlayerCount:     r.PlayerCount,
		Date:            date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		CustomerName:    r.CustomerName,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		CafeID:          resp.CafeID,
		StationType:     resp.StationType,
		Quantity:        resp.Quantity,
		PlayerCount:     resp.PlayerCount,
		Date:            resp.Date,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		UnitPrice:       resp.UnitPrice,
		TotalPrice:      resp.TotalPrice,
		PriceFlagged:    resp.PriceFlagged,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
