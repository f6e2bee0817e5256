package tasks

import (
	"encoding/json"

	"tripatlas/models"

	"github.com/hibiken/asynq"
)

const TypeBookingArchive = "booking:archive"

// NewBookingArchiveTask builds the task that records a confirmed booking.
func NewBookingArchiveTask(conf models.BookingConfirmation) (*asynq.Task, error) {
	b, err := json.Marshal(conf)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingArchive, b), nil
}

// ClientArchiver enqueues archive tasks on an asynq client. It satisfies the
// booking service's Archiver interface.
type ClientArchiver struct {
	Client *asynq.Client
}

func NewClientArchiver(client *asynq.Client) *ClientArchiver {
	return &ClientArchiver{Client: client}
}

func (a *ClientArchiver) EnqueueArchive(conf models.BookingConfirmation) error {
	task, err := NewBookingArchiveTask(conf)
	if err != nil {
		return err
	}
	_, err = a.Client.Enqueue(task, asynq.MaxRetry(5))
	return err
}
