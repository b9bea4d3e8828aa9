package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
)

// ScheduleServiceProvider defines the interface for schedule services.
type ScheduleServiceProvider interface {
	EnsureWeeklyReminder(cronExpression string, location *time.Location) (models.Schedule, error)
	GetActiveSchedules() ([]models.Schedule, error)
	GetScheduleByID(scheduleID string) (models.Schedule, error)
	UpdateScheduleRunTimes(scheduleID string, lastRun, nextRun time.Time) error
	SetActive(scheduleID string, active bool) error
}

// ScheduleService provides business logic for notification schedules.
// The next-run time lives in the database so a pending reminder is not
// lost when the process restarts.
type ScheduleService struct {
	db *sql.DB
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(db *sql.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// EnsureWeeklyReminder creates the weekly reminder schedule if it does not
// exist yet, or refreshes its cron expression if the configuration changed.
func (s *ScheduleService) EnsureWeeklyReminder(cronExpression string, location *time.Location) (models.Schedule, error) {
	cronSchedule, err := cron.ParseStandard(cronExpression)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("invalid cron expression: %w", err)
	}

	row := s.db.QueryRow("SELECT id, cron_expression FROM schedules WHERE kind = ?", models.ScheduleWeeklyReminder)
	var id, existingExpr string
	err = row.Scan(&id, &existingExpr)
	switch {
	case err == sql.ErrNoRows:
		nextRun := cronSchedule.Next(time.Now().In(location))
		schedule := models.Schedule{
			ID:             uuid.New().String(),
			Name:           "Weekly mojlis reminder",
			CronExpression: cronExpression,
			Kind:           models.ScheduleWeeklyReminder,
			IsActive:       true,
			NextRunAt:      &nextRun,
		}
		_, err = s.db.Exec(`
			INSERT INTO schedules (id, name, cron_expression, kind, is_active, next_run_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			schedule.ID, schedule.Name, schedule.CronExpression, schedule.Kind, schedule.IsActive, schedule.NextRunAt)
		if err != nil {
			return models.Schedule{}, err
		}
		return s.GetScheduleByID(schedule.ID)
	case err != nil:
		return models.Schedule{}, err
	}

	if existingExpr != cronExpression {
		nextRun := cronSchedule.Next(time.Now().In(location))
		_, err = s.db.Exec("UPDATE schedules SET cron_expression = ?, next_run_at = ? WHERE id = ?",
			cronExpression, nextRun, id)
		if err != nil {
			return models.Schedule{}, err
		}
	}
	return s.GetScheduleByID(id)
}

// GetActiveSchedules retrieves all active schedules from the database.
func (s *ScheduleService) GetActiveSchedules() ([]models.Schedule, error) {
	rows, err := s.db.Query(`
		SELECT id, name, cron_expression, kind, is_active, last_run_at, next_run_at, created_at
		FROM schedules WHERE is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var schedule models.Schedule
		if err := rows.Scan(&schedule.ID, &schedule.Name, &schedule.CronExpression, &schedule.Kind,
			&schedule.IsActive, &schedule.LastRunAt, &schedule.NextRunAt, &schedule.CreatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, rows.Err()
}

// GetScheduleByID retrieves a single schedule by its ID.
func (s *ScheduleService) GetScheduleByID(scheduleID string) (models.Schedule, error) {
	var schedule models.Schedule
	row := s.db.QueryRow(`
		SELECT id, name, cron_expression, kind, is_active, last_run_at, next_run_at, created_at
		FROM schedules WHERE id = ?`, scheduleID)
	err := row.Scan(&schedule.ID, &schedule.Name, &schedule.CronExpression, &schedule.Kind,
		&schedule.IsActive, &schedule.LastRunAt, &schedule.NextRunAt, &schedule.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Schedule{}, fmt.Errorf("schedule with ID %s not found", scheduleID)
		}
		return models.Schedule{}, err
	}
	return schedule, nil
}

// UpdateScheduleRunTimes records the last run and the next due time.
func (s *ScheduleService) UpdateScheduleRunTimes(scheduleID string, lastRun, nextRun time.Time) error {
	_, err := s.db.Exec("UPDATE schedules SET last_run_at = ?, next_run_at = ? WHERE id = ?",
		lastRun, nextRun, scheduleID)
	return err
}

// SetActive enables or disables a schedule.
func (s *ScheduleService) SetActive(scheduleID string, active bool) error {
	_, err := s.db.Exec("UPDATE schedules SET is_active = ? WHERE id = ?", active, scheduleID)
	return err
}
