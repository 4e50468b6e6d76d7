package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ragtask/config"
	"ragtask/models"
	"ragtask/services/tasks"
	"ragtask/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers the interview reminder. Delivery here is a log
// line; a mail or push integration slots in behind the same payload.
func handleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	utils.GetLogger().Info("Interview reminder due",
		zap.String("bookingID", payload.BookingID),
		zap.String("name", payload.Name),
		zap.String("email", payload.Email),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time))
	return nil
}
