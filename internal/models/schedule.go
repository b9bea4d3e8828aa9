package models

import "time"

// Schedule kinds.
const (
	ScheduleWeeklyReminder = "weekly_reminder"
)

// Schedule represents a recurring notification task. Run times are persisted
// so a pending reminder survives a process restart.
type Schedule struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CronExpression string     `json:"cronExpression"` // e.g., "8 23 * * 6" for Saturday 23:08
	Kind           string     `json:"kind"`
	IsActive       bool       `json:"isActive"`
	LastRunAt      *time.Time `json:"lastRunAt"`
	NextRunAt      *time.Time `json:"nextRunAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}
