package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hireflow/config"
	"hireflow/models"
	"hireflow/services/notification"
	"hireflow/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotifyWorker runs the async notification worker in the background.
func InitNotifyWorker(sender *notification.WebhookNotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingNotify, handleNotifyTask(sender))

	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotifyTask(sender *notification.WebhookNotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyWorker] invalid payload: %v", err)
			return err
		}

		if err := sender.SendPayload(ctx, p); err != nil {
			log.Printf("[NotifyWorker] failed to deliver notification for booking %s: %v", p.BookingID, err)
			return err
		}

		log.Printf("[NotifyWorker] delivered notification for booking %s", p.BookingID)
		return nil
	}
}
