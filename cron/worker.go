package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tripatlas/config"
	"tripatlas/models"
	"tripatlas/services/tasks"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitArchiveWorker runs the async worker that persists confirmed bookings
// into the bookings collection, off the request path.
func InitArchiveWorker(mongoClient *mongo.Client) {
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
	mux.HandleFunc(tasks.TypeBookingArchive, handleArchiveTask(mongoClient))

	// Start async worker with retry logic
	go func() {
		log.Println("[ArchiveWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ArchiveWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ArchiveWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleArchiveTask(mongoClient *mongo.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var conf models.BookingConfirmation
		if err := json.Unmarshal(task.Payload(), &conf); err != nil {
			log.Printf("[ArchiveHandler] invalid payload: %v", err)
			return err
		}

		coll := mongoClient.Database("tripatlas").Collection("bookings")
		insertCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if _, err := coll.InsertOne(insertCtx, conf); err != nil {
			log.Printf("[ArchiveHandler] failed to persist booking %s: %v", conf.BookingID, err)
			return err
		}

		log.Printf("[ArchiveHandler] archived booking %s (plan %s, total %d)",
			conf.BookingID, conf.PlanID, conf.Total.GrandTotal)
		return nil
	}
}
