package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"medistay/config"
	"medistay/models"
	"medistay/services/notification"
	"medistay/services/tasks"
)

// InitNotificationWorker runs the async email worker in background.
func InitNotificationWorker(mailer notification.Mailer) {
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
	mux.HandleFunc(tasks.TypeSendEmail, handleEmailTask(mailer))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}

		if mailer == nil {
			// Notifications disabled; drop the task rather than retry.
			log.Printf("[NotificationWorker] no mailer configured, dropping email to %s", p.To)
			return nil
		}

		if err := mailer.Send(ctx, p); err != nil {
			log.Printf("[NotificationWorker] failed to send email to %s: %v", p.To, err)
			return err
		}
		return nil
	}
}

// NewQueueClient returns an asynq client for enqueueing notification tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}
