package notify

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
)

// ScheduleStore persists schedule run times so a pending reminder survives
// a process restart.
type ScheduleStore interface {
	GetActiveSchedules() ([]models.Schedule, error)
	UpdateScheduleRunTimes(scheduleID string, lastRun, nextRun time.Time) error
}

// Scheduler checks for and fires due notification schedules.
type Scheduler struct {
	store    ScheduleStore
	notifier NotifierProvider
	location *time.Location
	ticker   *time.Ticker
	done     chan bool
}

// NewScheduler creates a new scheduler instance. Cron expressions are
// evaluated in the given location.
func NewScheduler(store ScheduleStore, notifier NotifierProvider, location *time.Location) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		location: location,
		done:     make(chan bool),
	}
}

// Run starts the scheduler's ticking loop.
func (s *Scheduler) Run() {
	log.Info().Msg("Starting notification scheduler...")
	s.ticker = time.NewTicker(30 * time.Second)
	defer s.ticker.Stop()

	// Run once immediately on start
	s.checkAndFire()

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping notification scheduler.")
			return
		case <-s.ticker.C:
			s.checkAndFire()
		}
	}
}

// Stop halts the scheduler.
func (s *Scheduler) Stop() {
	s.done <- true
}

// checkAndFire queries for due schedules and delivers their notifications.
func (s *Scheduler) checkAndFire() {
	schedules, err := s.store.GetActiveSchedules()
	if err != nil {
		log.Error().Err(err).Msg("Scheduler: failed to retrieve active schedules")
		return
	}

	for _, schedule := range schedules {
		cronSchedule, err := cron.ParseStandard(schedule.CronExpression)
		if err != nil {
			log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("Scheduler: invalid cron expression")
			continue
		}

		now := time.Now().In(s.location)
		if schedule.NextRunAt == nil || now.Before(*schedule.NextRunAt) {
			continue
		}

		s.fire(schedule)

		nextRun := cronSchedule.Next(now)
		if err := s.store.UpdateScheduleRunTimes(schedule.ID, now, nextRun); err != nil {
			log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("Scheduler: failed to update run times")
		}
	}
}

// fire delivers the notification a schedule stands for.
func (s *Scheduler) fire(schedule models.Schedule) {
	log.Info().Str("schedule_id", schedule.ID).Str("kind", schedule.Kind).Msg("Scheduler: firing schedule")

	switch schedule.Kind {
	case models.ScheduleWeeklyReminder:
		s.notifier.Deliver(WeeklyReminder())
	default:
		log.Warn().Str("kind", schedule.Kind).Str("schedule_id", schedule.ID).Msg("Scheduler: unknown schedule kind")
	}
}

// NextRun computes the first fire time of a cron expression after now in
// the given location.
func NextRun(cronExpression string, now time.Time, location *time.Location) (time.Time, error) {
	cronSchedule, err := cron.ParseStandard(cronExpression)
	if err != nil {
		return time.Time{}, err
	}
	return cronSchedule.Next(now.In(location)), nil
}
