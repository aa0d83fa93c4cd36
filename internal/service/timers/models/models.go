package models

import (
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// Request модели

// StartTimerRequest запрос на запуск таймера членства
type StartTimerRequest struct {
	CafeID       int64  `json:"cafeId"`
	MemberID     int64  `json:"memberId"`
	CustomerName string `json:"customerName"`
	StationType  string `json:"stationType"`
	UnitNumber   int    `json:"unitNumber"`
}

// Response модели

// TimerResponse ответ с данными таймера
type TimerResponse struct {
	ID             string  `json:"id"`
	CafeID         int64   `json:"cafeId"`
	MemberID       int64   `json:"memberId"`
	CustomerName   string  `json:"customerName"`
	StationType    string  `json:"stationType"`
	UnitNumber     int     `json:"unitNumber"`
	UnitLabel      string  `json:"unitLabel"` // "PC-07"
	Status         string  `json:"status"`
	ElapsedMinutes int     `json:"elapsedMinutes"`
	StartedAt      string  `json:"startedAt"`           // ISO 8601 format
	StoppedAt      *string `json:"stoppedAt,omitempty"` // ISO 8601 format
}

// TimerListResponse ответ со списком таймеров
type TimerListResponse struct {
	Timers []TimerResponse `json:"timers"`
}

// FromDomainTimer конвертирует domain модель в DTO
func FromDomainTimer(t *domain.TimerSubscription, now time.Time) *TimerResponse {
	if t == nil {
		return nil
	}

	elapsedUntil := now
	if t.StoppedAt != nil {
		elapsedUntil = *t.StoppedAt
	}

	resp := &TimerResponse{
		ID:             t.ID,
		CafeID:         t.CafeID,
		MemberID:       t.MemberID,
		CustomerName:   t.CustomerName,
		StationType:    string(t.StationType),
		UnitNumber:     t.UnitNumber,
		UnitLabel:      t.UnitLabel(),
		Status:         string(t.Status),
		ElapsedMinutes: t.ElapsedMinutes(elapsedUntil),
		StartedAt:      t.StartedAt.Format(time.RFC3339),
	}

	if t.StoppedAt != nil {
		stoppedAt := t.StoppedAt.Format(time.RFC3339)
		resp.StoppedAt = &stoppedAt
	}

	return resp
}

// FromDomainTimerList конвертирует список domain моделей в DTO
func FromDomainTimerList(timers []*domain.TimerSubscription, now time.Time) *TimerListResponse {
	list := make([]TimerResponse, 0, len(timers))
	for _, t := range timers {
		list = append(list, *FromDomainTimer(t, now))
	}
	return &TimerListResponse{Timers: list}
}
