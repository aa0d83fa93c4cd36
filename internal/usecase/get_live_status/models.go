package get_live_status

import (
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// UnitView одна физическая станция на дашборде
type UnitView struct {
	UnitNumber int    `json:"unitNumber"`
	Label      string `json:"label"` // "PS5-03"
	Status     string `json:"status"`

	CustomerName     string  `json:"customerName,omitempty"`
	ReservationID    *int64  `json:"reservationId,omitempty"`
	TimerID          *string `json:"timerId,omitempty"`
	RemainingMinutes *int    `json:"remainingMinutes,omitempty"` // nil для безлимитных сессий
	ElapsedMinutes   *int    `json:"elapsedMinutes,omitempty"`
	EndsAt           *string `json:"endsAt,omitempty"` // "7:30 pm"
}

// StationGroup станции одного типа
type StationGroup struct {
	StationType string     `json:"stationType"`
	Label       string     `json:"label"` // "PlayStation 5"
	Capacity    int        `json:"capacity"`
	FreeCount   int        `json:"freeCount"`
	Units       []UnitView `json:"units"`
}

// Response снимок живого статуса кафе
type Response struct {
	CafeID      int64          `json:"cafeId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Stations    []StationGroup `json:"stations"`
}

// fromAssignments конвертирует раскладку станций в DTO
func fromAssignments(st domain.StationType, units []domain.UnitAssignment) StationGroup {
	group := StationGroup{
		StationType: string(st),
		Label:       st.Label(),
		Capacity:    len(units),
		Units:       make([]UnitView, 0, len(units)),
	}

	for _, u := range units {
		if u.IsFree() {
			group.FreeCount++
		}
		group.Units = append(group.Units, UnitView{
			UnitNumber:       u.UnitNumber,
			Label:            u.Label,
			Status:           string(u.Status),
			CustomerName:     u.CustomerName,
			ReservationID:    u.ReservationID,
			TimerID:          u.TimerID,
			RemainingMinutes: u.RemainingMinutes,
			ElapsedMinutes:   u.ElapsedMinutes,
			EndsAt:           u.EndsAtClock,
		})
	}

	return group
}
