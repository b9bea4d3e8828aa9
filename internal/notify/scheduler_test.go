package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
)

type fakeStore struct {
	schedules []models.Schedule
	updates   map[string]time.Time
}

func (f *fakeStore) GetActiveSchedules() ([]models.Schedule, error) {
	return f.schedules, nil
}

func (f *fakeStore) UpdateScheduleRunTimes(id string, lastRun, nextRun time.Time) error {
	if f.updates == nil {
		f.updates = make(map[string]time.Time)
	}
	f.updates[id] = nextRun
	return nil
}

type fakeNotifier struct {
	delivered []Notification
}

func (f *fakeNotifier) Deliver(n Notification) {
	f.delivered = append(f.delivered, n)
}

func TestSchedulerFiresDueWeeklyReminder(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	store := &fakeStore{schedules: []models.Schedule{{
		ID:             "s1",
		Kind:           models.ScheduleWeeklyReminder,
		CronExpression: "8 23 * * 6",
		IsActive:       true,
		NextRunAt:      &past,
	}}}
	notifier := &fakeNotifier{}

	scheduler := NewScheduler(store, notifier, time.UTC)
	scheduler.checkAndFire()

	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, KindWeeklyReminder, notifier.delivered[0].Kind)
	assert.Equal(t, "weekly-mojlis", notifier.delivered[0].Tag)

	// The next run lands on a Saturday at 23:08 and is persisted.
	next, ok := store.updates["s1"]
	require.True(t, ok)
	assert.Equal(t, time.Saturday, next.Weekday())
	assert.Equal(t, 23, next.Hour())
	assert.Equal(t, 8, next.Minute())
}

func TestSchedulerSkipsFutureSchedules(t *testing.T) {
	future := time.Now().Add(time.Hour)
	store := &fakeStore{schedules: []models.Schedule{{
		ID:             "s1",
		Kind:           models.ScheduleWeeklyReminder,
		CronExpression: "8 23 * * 6",
		IsActive:       true,
		NextRunAt:      &future,
	}}}
	notifier := &fakeNotifier{}

	scheduler := NewScheduler(store, notifier, time.UTC)
	scheduler.checkAndFire()

	assert.Empty(t, notifier.delivered)
	assert.Empty(t, store.updates)
}

func TestSchedulerIgnoresInvalidCron(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	store := &fakeStore{schedules: []models.Schedule{{
		ID:             "s1",
		Kind:           models.ScheduleWeeklyReminder,
		CronExpression: "not a cron",
		IsActive:       true,
		NextRunAt:      &past,
	}}}
	notifier := &fakeNotifier{}

	scheduler := NewScheduler(store, notifier, time.UTC)
	scheduler.checkAndFire()

	assert.Empty(t, notifier.delivered)
}

func TestNextRunReArmsWeekly(t *testing.T) {
	first, err := NextRun("8 23 * * 6", time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, first.Weekday())

	second, err := NextRun("8 23 * * 6", first, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, second.Sub(first))
}

func TestNotificationDefaults(t *testing.T) {
	test := Test("", "")
	assert.Equal(t, "পরীক্ষামূলক নোটিফিকেশন", test.Title)
	assert.Equal(t, "নোটিফিকেশন সিস্টেম কাজ করছে!", test.Body)

	push := Push("title", "body", "")
	assert.Equal(t, "/", push.URL)
	assert.Equal(t, "push-notification", push.Tag)

	weekly := WeeklyReminder()
	assert.Equal(t, "/events", weekly.URL)
}
