package tracker

import (
	"context"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// Runner опрашивает хранилище с фиксированным интервалом, прогоняет
// трекер и раздает события завершения. Пропущенный тик безвреден:
// следующий вызов - идемпотентная функция текущего состояния.
type Runner struct {
	tracker      *Tracker
	reservations ReservationRepository
	timers       TimerRepository
	publisher    EventPublisher
	metrics      MetricsCollector
	timeProvider TimeProvider
	logger       Logger
	interval     time.Duration
}

// NewRunner создает раннер трекера сессий
func NewRunner(
	reservations ReservationRepository,
	timers TimerRepository,
	publisher EventPublisher,
	metrics MetricsCollector,
	logger Logger,
	interval time.Duration,
) *Runner {
	if interval <= 0 {
		interval = domain.DefaultTrackerIntervalSec * time.Second
	}

	return &Runner{
		tracker:      New(),
		reservations: reservations,
		timers:       timers,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		interval:     interval,
	}
}

// Run крутит цикл опроса до отмены контекста
func (r *Runner) Run(ctx context.Context) {
	r.logger.Info("SessionTracker: started, interval=%s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("SessionTracker: stopped")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce выполняет один проход: загрузка снапшота, тик, раздача событий
func (r *Runner) RunOnce(ctx context.Context) {
	now := r.timeProvider.Now()

	running, err := r.reservations.ListRunning(ctx, now)
	if err != nil {
		r.logger.Error("SessionTracker: failed to list running reservations: %v", err)
		return
	}

	active, err := r.timers.ListActive(ctx)
	if err != nil {
		r.logger.Error("SessionTracker: failed to list active timers: %v", err)
		return
	}

	sessions := make([]Session, 0, len(running)+len(active))
	for _, res := range running {
		sessions = append(sessions, FromReservation(res))
	}
	for _, timer := range active {
		sessions = append(sessions, FromTimer(timer))
	}

	events := r.tracker.Tick(now, sessions)

	for _, event := range events {
		r.logger.Info("SessionTracker: session ended: entity=%s, customer=%s, station=%s, duration=%d",
			event.EntityID, event.CustomerName, event.StationLabel, event.DurationMinutes)

		if r.metrics != nil {
			r.metrics.IncSessionsEnded(event.StationType)
		}

		// Уведомление fire-and-forget: недоступный брокер не должен
		// останавливать трекер
		if err := r.publisher.PublishSessionEnded(ctx, event); err != nil {
			r.logger.Error("SessionTracker: failed to publish session ended for %s: %v", event.EntityID, err)
		}
	}

	// Закончившиеся брони переводятся в completed отдельно от событий:
	// неудачный перевод повторится на следующем тике, событие - нет
	for i := range sessions {
		s := &sessions[i]
		if !s.Ended(now) || s.ReservationID == nil {
			continue
		}
		if err := r.reservations.UpdateStatus(ctx, *s.ReservationID, domain.StatusCompleted); err != nil {
			r.logger.Error("SessionTracker: failed to complete reservation id=%d: %v", *s.ReservationID, err)
		}
	}

	r.tracker.Prune(sessions)
}
