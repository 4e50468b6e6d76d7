package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"ragtask/models"
	"ragtask/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload as an asynq task scheduled at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues interview reminders when bookings complete.
type ReminderScheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewReminderScheduler(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpts),
		logger: logger,
	}
}

// Schedule queues a reminder one hour before the interview slot. Interviews
// closer than an hour away get the reminder immediately.
func (s *ReminderScheduler) Schedule(booking *models.Booking) error {
	slot, err := time.ParseInLocation(utils.DateLayout+" "+utils.TimeLayout,
		booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for booking %s: %w", booking.ID, err)
	}

	fireAt := slot.Add(-time.Hour)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now().Add(time.Minute)
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		Name:      booking.Name,
		Email:     booking.Email,
		Date:      booking.Date,
		Time:      booking.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	info, err := s.client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.logger.Info("Scheduled interview reminder",
		zap.String("bookingID", booking.ID),
		zap.String("taskID", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
