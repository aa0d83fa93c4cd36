package get_availability

import (
	getAvailability "github.com/playgrid/PGC-StationService/internal/usecase/get_availability"
)

// AvailabilityResponse ответ проверки доступности
type AvailabilityResponse struct {
	Available     bool    `json:"available"`
	Remaining     int     `json:"remaining"`
	NextAvailable *string `json:"nextAvailable,omitempty"`
	UnitPrice     int     `json:"unitPrice"`
	TotalPrice    int     `json:"totalPrice"`
	PriceFlagged  bool    `json:"priceFlagged"`
}

// FromUseCaseResponse конвертирует usecase ответ в DTO
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	if resp == nil {
		return nil
	}
	return &AvailabilityResponse{
		Available:     resp.Available,
		Remaining:     resp.Remaining,
		NextAvailable: resp.NextAvailable,
		UnitPrice:     resp.UnitPrice,
		TotalPrice:    resp.TotalPrice,
		PriceFlagged:  resp.PriceFlagged,
	}
}
